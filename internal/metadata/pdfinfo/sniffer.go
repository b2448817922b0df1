// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfinfo

import (
	"os"
	"strings"
)

// UnknownVersion is reported when the header carries no recognizable
// version signature.
const UnknownVersion = "unknown"

// headerLen covers the full signature, e.g. "%PDF-1.4".
const headerLen = 8

// SniffVersion reads the first 8 bytes of the file and returns the version
// token from the "%PDF-" header signature (e.g. "1.4"), or "unknown" when the
// signature is absent. Files shorter than the signature and unreadable files
// also report "unknown"; sniffing never fails.
//
// The signature is only recognized at byte offset 0. The format permits
// leading bytes before the marker, but those files are rare and their version
// is deliberately left as "unknown".
func SniffVersion(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return UnknownVersion
	}
	defer f.Close()

	header := make([]byte, headerLen)
	n, _ := f.Read(header)

	text := string(header[:n])
	if !strings.HasPrefix(text, "%PDF-") {
		return UnknownVersion
	}
	return strings.TrimSpace(text[5:])
}
