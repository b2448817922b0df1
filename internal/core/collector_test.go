// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTestPDF mirrors the fixture builder in pdfinfo: a minimal valid PDF
// with the given info-dictionary fields.
func writeTestPDF(t *testing.T, path string, info map[string]string) {
	t.Helper()

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var infoDict bytes.Buffer
	infoDict.WriteString("<<")
	for _, k := range keys {
		fmt.Fprintf(&infoDict, " /%s (%s)", k, info[k])
	}
	infoDict.WriteString(" >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	addObj := func(num int, body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, "<< /Type /Pages /Kids [] /Count 0 >>")
	addObj(3, infoDict.String())

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 3 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
}

func TestIsPDFPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"doc.pdf", true},
		{"DOC.PDF", true},
		{"dir/report.Pdf", true},
		{"doc.pdf.txt", false},
		{"doc.txt", false},
		{"pdf", false},
	}
	for _, tt := range tests {
		if got := IsPDFPath(tt.path); got != tt.want {
			t.Errorf("IsPDFPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCollectFile_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.pdf")
	writeTestPDF(t, path, map[string]string{"Title": "Single"})

	rec, ok := CollectFile(path, Options{})
	if !ok {
		t.Fatal("expected success")
	}
	if rec.Title != "Single" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.PDFVersion != "1.4" {
		t.Errorf("PDFVersion = %q", rec.PDFVersion)
	}
}

func TestCollectFile_Failure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\nbroken"), 0600); err != nil {
		t.Fatal(err)
	}

	rec, ok := CollectFile(path, Options{})
	if ok || rec != nil {
		t.Errorf("expected failure, got record %+v", rec)
	}
}

func TestCollectFile_StrictSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := CollectFile(path, Options{Strict: true}); ok {
		t.Error("expected strict mode to reject invalid file")
	}
}

func TestCollectDirectory_WalkOrderAndFiltering(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0700); err != nil {
		t.Fatal(err)
	}

	writeTestPDF(t, filepath.Join(dir, "a.pdf"), map[string]string{"Title": "First"})
	writeTestPDF(t, filepath.Join(dir, "sub", "b.PDF"), map[string]string{"Title": "Nested"})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0600); err != nil {
		t.Fatal(err)
	}

	records := CollectDirectory(dir, Options{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// filepath.Walk visits lexically: a.pdf before sub/b.PDF
	if records[0].Title != "First" || records[1].Title != "Nested" {
		t.Errorf("unexpected order: %q, %q", records[0].Title, records[1].Title)
	}
}

func TestCollectDirectory_SkipsFailingFile(t *testing.T) {
	dir := t.TempDir()

	writeTestPDF(t, filepath.Join(dir, "good1.pdf"), map[string]string{"Title": "One"})
	writeTestPDF(t, filepath.Join(dir, "good2.pdf"), map[string]string{"Title": "Two"})
	if err := os.WriteFile(filepath.Join(dir, "bad.pdf"), []byte("%PDF-1.4\nbroken"), 0600); err != nil {
		t.Fatal(err)
	}

	records := CollectDirectory(dir, Options{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records (bad.pdf skipped), got %d", len(records))
	}
}

func TestCollectDirectory_NoPDFs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# nothing"), 0600); err != nil {
		t.Fatal(err)
	}

	if records := CollectDirectory(dir, Options{}); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
