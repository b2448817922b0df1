// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

// Record holds the document information extracted from a single PDF file.
// Absent fields are normalized to the empty string when the record is built,
// so a Record never carries a "missing" marker of its own.
type Record struct {
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Creator     string `json:"creator" yaml:"creator"`
	Created     string `json:"created" yaml:"created"`
	Modified    string `json:"modified" yaml:"modified"`
	Subject     string `json:"subject" yaml:"subject"`
	Keywords    string `json:"keywords" yaml:"keywords"`
	Description string `json:"description" yaml:"description"`
	Producer    string `json:"producer" yaml:"producer"`
	PDFVersion  string `json:"pdf_version" yaml:"pdf_version"`
}

// FieldNames returns the column names in output order. Every record in a batch
// shares this set, so table headers are derived from it directly.
func FieldNames() []string {
	return []string{
		"Title",
		"Author",
		"Creator",
		"Created",
		"Modified",
		"Subject",
		"Keywords",
		"Description",
		"Producer",
		"PDF Version",
	}
}

// Values returns the field values in the same order as FieldNames.
func (r Record) Values() []string {
	return []string{
		r.Title,
		r.Author,
		r.Creator,
		r.Created,
		r.Modified,
		r.Subject,
		r.Keywords,
		r.Description,
		r.Producer,
		r.PDFVersion,
	}
}
