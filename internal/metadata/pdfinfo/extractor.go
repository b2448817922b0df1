// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdfinfo reads the document information dictionary of a PDF file
// into a metadata.Record. Parsing the PDF object model is delegated to
// github.com/ledongthuc/pdf; pdfcpu is used only to validate files and to
// sharpen diagnostics when extraction fails.
package pdfinfo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"metapdf/internal/metadata"
)

// Extract reads the info dictionary of the PDF at path and returns a fully
// populated record. Individual fields that are absent from the dictionary
// become empty strings; only a total parse failure (corrupt file, unsupported
// encryption, unreadable stream) returns an error and no record.
func Extract(path string) (*metadata.Record, error) {
	rec, err := readInfoDictionary(path)
	if err != nil {
		return nil, classifyFailure(path, err)
	}
	rec.PDFVersion = SniffVersion(path)
	return rec, nil
}

// readInfoDictionary opens the document and copies the standard info fields.
// The underlying reader panics on some malformed cross-reference tables, so
// extraction runs under recover and converts panics to errors.
func readInfoDictionary(path string) (rec *metadata.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Missing keys resolve to null values whose Text() is "", which gives the
	// empty-string normalization for free.
	info := r.Trailer().Key("Info")
	rec = &metadata.Record{
		Title:       info.Key("Title").Text(),
		Author:      info.Key("Author").Text(),
		Creator:     info.Key("Creator").Text(),
		Created:     formatPDFDate(info.Key("CreationDate").Text()),
		Modified:    formatPDFDate(info.Key("ModDate").Text()),
		Subject:     info.Key("Subject").Text(),
		Keywords:    info.Key("Keywords").Text(),
		Description: info.Key("Description").Text(),
		Producer:    info.Key("Producer").Text(),
	}
	return rec, nil
}

// Validate runs a relaxed pdfcpu validation pass over the file.
func Validate(path string) error {
	return api.ValidateFile(path, validationConfig())
}

func validationConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// classifyFailure refines an extraction error with the pdfcpu validation
// result. A file the validator also rejects gets the validator's usually more
// specific message attached; otherwise the original error stands.
func classifyFailure(path string, err error) error {
	if verr := api.ValidateFile(path, validationConfig()); verr != nil {
		return fmt.Errorf("%w (validation: %v)", err, verr)
	}
	return err
}

// formatPDFDate renders a PDF date string (D:YYYYMMDDHHmmSSOHH'mm') as
// RFC 3339. Values that do not parse are passed through verbatim, so odd
// producer-specific date strings still reach the output unchanged.
func formatPDFDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, err := parsePDFDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(time.RFC3339)
}

// parsePDFDate parses a PDF date string.
func parsePDFDate(dateStr string) (time.Time, error) {
	s := strings.TrimPrefix(dateStr, "D:")

	if len(s) < 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	// Components after the year default to the start of their range.
	month := extractInt(s, 4, 2, 1)
	day := extractInt(s, 6, 2, 1)
	hour := extractInt(s, 8, 2, 0)
	minute := extractInt(s, 10, 2, 0)
	second := extractInt(s, 12, 2, 0)

	loc := time.UTC
	if len(s) >= 15 && (s[14] == '+' || s[14] == '-') {
		tzHour := extractInt(s, 15, 2, 0)
		tzMinute := extractInt(s, 18, 2, 0)
		offset := tzHour*3600 + tzMinute*60
		if s[14] == '-' {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}

// extractInt extracts an integer from a string with bounds checking.
func extractInt(s string, start, length, defaultVal int) int {
	if start+length <= len(s) {
		if val, err := strconv.Atoi(s[start : start+length]); err == nil {
			return val
		}
	}
	return defaultVal
}
