// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"metapdf/internal/metadata"
)

// Formatter renders a batch of metadata records into output text.
type Formatter interface {
	// Format renders the records. Callers guarantee a non-empty batch.
	Format(records []metadata.Record) (string, error)

	// Name returns the format name used on the command line (e.g. "csv").
	Name() string

	// Description returns a brief description of the output.
	Description() string

	// FileExtension returns the extension appended to output names that lack
	// it (e.g. ".csv").
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted for stable help output.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry
func Get(name string) (Formatter, error) {
	formatter, exists := DefaultRegistry.Get(name)
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(DefaultRegistry.List(), ", "))
	}
	return formatter, nil
}

// EnsureExtension appends ext to name unless name already ends with it. The
// check is case-insensitive and the existing spelling is kept, so
// "Report.CSV" stays "Report.CSV" while "report" becomes "report.csv".
func EnsureExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}
