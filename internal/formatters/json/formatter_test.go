// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"metapdf/internal/metadata"
)

func TestFormat_RoundTrip(t *testing.T) {
	f := NewFormatter()
	records := []metadata.Record{
		{Title: "One", Author: "A", PDFVersion: "1.4"},
		{Title: "Two"},
	}

	out, err := f.Format(records)
	require.NoError(t, err)

	var decoded []metadata.Record
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, records, decoded)
}

func TestFormatterIdentity(t *testing.T) {
	f := NewFormatter()
	require.Equal(t, "json", f.Name())
	require.Equal(t, ".json", f.FileExtension())
}
