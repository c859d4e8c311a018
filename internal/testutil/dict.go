// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil contains helpers for writing test dictionaries.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression used for a test dictionary file.
type Compression int

const (
	// None writes plain text.
	None Compression = iota

	// Gzip writes a gzip compressed file.
	Gzip

	// DictZip writes a dictzip compressed file.
	DictZip
)

// Ext returns the file extension for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".txt.gz"
	case DictZip:
		return ".txt.dz"
	default:
		return ".txt"
	}
}

// MakeDict returns the contents of a dictionary file with the given lines.
func MakeDict(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteDict writes a dictionary file containing lines to a temporary
// directory and returns its path. The file is removed when the test ends.
func WriteDict(t *testing.T, lines []string, c Compression) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ESPDIC"+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := MakeDict(lines)

	switch c {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(d); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
