// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/term"

	"metapdf/internal/config"
	"metapdf/internal/core"
	"metapdf/internal/formatters"
	_ "metapdf/internal/formatters/csv"
	_ "metapdf/internal/formatters/json"
	_ "metapdf/internal/formatters/yaml"
	"metapdf/internal/metadata"
	"metapdf/internal/version"
)

func main() {
	var (
		outputName string
		inputFile  string
		inputDir   string
	)
	flag.StringVar(&outputName, "n", "", "Path and/or name of the output file")
	flag.StringVar(&outputName, "name", "", "Path and/or name of the output file (shorthand -n)")
	flag.StringVar(&inputFile, "f", "", "Path to a single pdf file")
	flag.StringVar(&inputFile, "file", "", "Path to a single pdf file (shorthand -f)")
	flag.StringVar(&inputDir, "d", "", "Path to a directory with PDF files")
	flag.StringVar(&inputDir, "directory", "", "Path to a directory with PDF files (shorthand -d)")

	outputFormat := flag.String("format", "", "Output format: csv, json, yaml (default: csv)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	verbose := flag.Bool("verbose", false, "Report every processed file on stderr")
	strict := flag.Bool("strict", false, "Validate each PDF with pdfcpu before extracting metadata")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Required flags and the file/directory exclusivity are part of argument
	// parsing: violations exit non-zero with usage on stderr.
	if outputName == "" {
		fmt.Fprintln(os.Stderr, "Error: -n/--name is required")
		flag.Usage()
		os.Exit(2)
	}
	if (inputFile == "") == (inputDir == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -f/--file or -d/--directory is required")
		flag.Usage()
		os.Exit(2)
	}

	// Resolve configuration: flag > config file > built-in default.
	configPath := *configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg := config.LoadConfigOrDefault(configPath)

	format := cfg.Defaults.Format
	if isFlagSet("format") && *outputFormat != "" {
		format = *outputFormat
	}
	opts := core.Options{
		Strict:  cfg.Defaults.Strict,
		Verbose: cfg.Defaults.Verbose,
	}
	if isFlagSet("strict") {
		opts.Strict = *strict
	}
	if isFlagSet("verbose") {
		opts.Verbose = *verbose
	}
	disableColor := cfg.Defaults.NoColor
	if isFlagSet("no-color") {
		disableColor = *noColor
	}
	if disableColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	formatter, err := formatters.Get(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	outputName = formatters.EnsureExtension(outputName, formatter.FileExtension())

	switch {
	case inputFile != "" && isRegularFile(inputFile):
		processFile(inputFile, outputName, formatter, opts)
	case inputDir != "" && isDirectory(inputDir):
		processDirectory(inputDir, outputName, formatter, opts)
	default:
		fmt.Println("Please enter a valid path to a single pdffile or a directory.")
	}
}

// processFile extracts metadata from a single PDF file and saves it.
func processFile(path, outputName string, formatter formatters.Formatter, opts core.Options) {
	rec, ok := core.CollectFile(path, opts)
	if !ok {
		return
	}
	if !writeOutput([]metadata.Record{*rec}, outputName, formatter) {
		return
	}
	color.New(color.FgGreen).Printf("Metadata is saved as %s.\n", outputName)
}

// processDirectory extracts metadata from every PDF under the directory and
// saves it all in one output file.
func processDirectory(dir, outputName string, formatter formatters.Formatter, opts core.Options) {
	records := core.CollectDirectory(dir, opts)
	if len(records) == 0 {
		color.New(color.FgYellow).Println("No pdf files found in directory.")
		return
	}
	if !writeOutput(records, outputName, formatter) {
		return
	}
	color.New(color.FgGreen).Printf("Metadata from %d files was saved in %s.\n", len(records), outputName)
}

// writeOutput renders the records and fully rewrites the output file.
// It is never called with an empty batch, so an empty run leaves no file.
func writeOutput(records []metadata.Record, outputName string, formatter formatters.Formatter) bool {
	result, err := formatter.Format(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		return false
	}

	cleanPath := filepath.Clean(outputName)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			return false
		}
	}
	if err := os.WriteFile(cleanPath, []byte(result), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to output file: %v\n", err)
		return false
	}
	return true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isFlagSet checks whether a flag was passed explicitly on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
