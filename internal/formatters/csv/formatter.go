// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"metapdf/internal/formatters"
	"metapdf/internal/metadata"
)

// Delimiter separates fields. Semicolon, not comma: metadata values routinely
// contain natural-language commas and some locales use decimal commas.
const Delimiter = ";"

// Formatter implements semicolon-delimited table output
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Semicolon-delimited table for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format renders a header row derived from the fixed field order followed by
// one row per record. Rows are newline-terminated.
func (f *Formatter) Format(records []metadata.Record) (string, error) {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, f.joinRow(metadata.FieldNames()))

	for _, rec := range records {
		rows = append(rows, f.joinRow(rec.Values()))
	}

	return strings.Join(rows, "\n") + "\n", nil
}

func (f *Formatter) joinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = f.escapeField(field)
	}
	return strings.Join(escaped, Delimiter)
}

// escapeField quotes a field RFC-4180 style when it contains the delimiter, a
// quote, or a line break. Field values are otherwise reproduced verbatim.
func (f *Formatter) escapeField(field string) string {
	if strings.Contains(field, Delimiter) || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
