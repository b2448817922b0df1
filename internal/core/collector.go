// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core holds the collection logic shared by the CLI modes: extract
// metadata per file, skip failures, and keep successful records in traversal
// order.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"metapdf/internal/metadata"
	"metapdf/internal/metadata/pdfinfo"
)

// Options controls a collection run.
type Options struct {
	// Strict validates each file with pdfcpu before extraction; files that
	// fail validation are skipped like any other extraction failure.
	Strict bool
	// Verbose reports every visited PDF file on stderr.
	Verbose bool
}

var errLine = color.New(color.FgRed)

// CollectFile runs extraction for a single file. A failure is reported to the
// operator and yields ok=false; it never aborts the caller.
func CollectFile(path string, opts Options) (*metadata.Record, bool) {
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Processing %s\n", path)
	}

	if opts.Strict {
		if err := pdfinfo.Validate(path); err != nil {
			reportFileError(path, err)
			return nil, false
		}
	}

	rec, err := pdfinfo.Extract(path)
	if err != nil {
		reportFileError(path, err)
		return nil, false
	}
	return rec, true
}

// CollectDirectory recursively walks dir and extracts metadata from every
// file whose name ends in ".pdf" (case-insensitive). Records are returned in
// walk order; failing files are reported and skipped.
func CollectDirectory(dir string, opts Options) []metadata.Record {
	var records []metadata.Record

	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
			return nil // continue walking despite the error
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if !IsPDFPath(path) {
			return nil
		}
		if rec, ok := CollectFile(path, opts); ok {
			records = append(records, *rec)
		}
		return nil
	})

	return records
}

// IsPDFPath reports whether the file name carries a .pdf suffix.
func IsPDFPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

// reportFileError prints the per-file diagnostic. It goes to stdout, not
// stderr: the skip is part of the normal run narrative, not a process error.
func reportFileError(path string, err error) {
	errLine.Printf("Error processing file %s: %v\n", path, err)
}
