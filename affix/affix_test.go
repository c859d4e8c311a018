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

package affix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sampleWords = []string{
	"hundo", "hundido", "katoj", "lernejo", "malbona", "eksedzo",
	"gepatroj", "monujo", "ĉambrego", "dometo", "kantisto", "lernejestro",
	"HUNDIDO", "Lernejo", "manĝaĵo", "belega", "a", "oj", "ideoj", "id",
	"re", "malo", "ŝipestroj", "kato", "skribilo", "ĉu",
}

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{
			name:     "empty",
			word:     "",
			expected: "",
		},
		{
			name:     "noun ending",
			word:     "hundo",
			expected: "hund",
		},
		{
			name:     "suffix with linking vowel",
			word:     "hundido",
			expected: "hund",
		},
		{
			name:     "plural ending",
			word:     "katoj",
			expected: "kat",
		},
		{
			name:     "suffix with two linking characters",
			word:     "monujoj",
			expected: "mon",
		},
		{
			name:     "prefix and ending",
			word:     "malvarma",
			expected: "varm",
		},
		{
			name:     "longest prefix first",
			word:     "eksedzo",
			expected: "edz",
		},
		{
			name:     "repeated suffixes",
			word:     "lernejestro",
			expected: "lern",
		},
		{
			name:     "non-ascii suffix",
			word:     "manĝaĵo",
			expected: "manĝ",
		},
		{
			name:     "case preserved",
			word:     "HUNDIDO",
			expected: "HUND",
		},
		{
			name:     "mixed case",
			word:     "Lernejo",
			expected: "Lern",
		},
		{
			name:     "removal would empty word",
			word:     "id",
			expected: "id",
		},
		{
			name:     "ending alone",
			word:     "oj",
			expected: "oj",
		},
		{
			name:     "single vowel",
			word:     "a",
			expected: "a",
		},
		{
			name:     "no affixes",
			word:     "ĉu",
			expected: "ĉu",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Strip(test.word)); diff != "" {
				t.Fatalf("Strip(%q) (-want, +got):\n%s", test.word, diff)
			}
		})
	}
}

func TestStrip_idempotent(t *testing.T) {
	t.Parallel()

	for _, w := range sampleWords {
		once := Strip(w)
		twice := Strip(once)
		if once != twice {
			t.Errorf("Strip(Strip(%q)) = %q, want %q", w, twice, once)
		}
	}
}

func TestStrip_nonEmpty(t *testing.T) {
	t.Parallel()

	for _, w := range sampleWords {
		if got := Strip(w); got == "" {
			t.Errorf("Strip(%q) returned empty string", w)
		}
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	table := NewTable([]string{"ek", " EKS ", ""}, []string{"ej", "estr"})

	if diff := cmp.Diff([]string{"eks", "ek"}, table.Prefixes()); diff != "" {
		t.Errorf("Prefixes (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"estr", "ej"}, table.Suffixes()); diff != "" {
		t.Errorf("Suffixes (-want, +got):\n%s", diff)
	}

	if got, want := table.Strip("eksedzejo"), "edz"; got != want {
		t.Errorf("Strip: got %q, want %q", got, want)
	}
}

func TestTable_empty(t *testing.T) {
	t.Parallel()

	table := NewTable(nil, nil)

	// Only the grammatical ending is removed.
	if got, want := table.Strip("hundido"), "hundid"; got != want {
		t.Errorf("Strip: got %q, want %q", got, want)
	}
}
