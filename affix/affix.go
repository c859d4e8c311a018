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
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxLinking is the number of linking characters allowed after a suffix.
const maxLinking = 2

// DefaultPrefixes are the prefixes stripped by the default table. The short
// prefixes "bo" and "fi" are left out since they begin many roots (bona, fino).
var DefaultPrefixes = []string{
	"dis", "ek", "eks", "ge", "mal", "mis", "pra", "re",
}

// DefaultSuffixes are the suffixes stripped by the default table. Participle
// endings (ant, int, ont, at, it, ot) and the fraction suffix "on" are left
// out because they collide with too many common roots (e.g. kat, font, mon).
var DefaultSuffixes = []string{
	"aĉ", "ad", "aĵ", "an", "ar", "ebl", "ec", "eg", "ej", "em", "end", "er",
	"estr", "et", "id", "ig", "iĝ", "il", "in", "ind", "ing", "ism", "ist",
	"obl", "op", "uj", "ul", "um",
}

var defaultTable = NewTable(DefaultPrefixes, DefaultSuffixes)

// Table is an immutable set of prefixes and suffixes. A Table is safe for
// concurrent use.
type Table struct {
	// prefixes and suffixes are lower case and sorted longest first so
	// that "eks" is tried before "ek".
	prefixes [][]rune
	suffixes [][]rune
}

// NewTable returns a new Table for the given prefixes and suffixes. Entries
// are lower cased and empty entries are ignored.
func NewTable(prefixes, suffixes []string) *Table {
	return &Table{
		prefixes: prepare(prefixes),
		suffixes: prepare(suffixes),
	}
}

// DefaultTable returns the built-in Esperanto affix table.
func DefaultTable() *Table {
	return defaultTable
}

// Prefixes returns the table's prefixes in the order they are tried.
func (t *Table) Prefixes() []string {
	return toStrings(t.prefixes)
}

// Suffixes returns the table's suffixes in the order they are tried.
func (t *Table) Suffixes() []string {
	return toStrings(t.suffixes)
}

// Strip strips affixes from word using the default table.
func Strip(word string) string {
	return defaultTable.Strip(word)
}

// Strip returns the approximate root of word. Strip never returns an empty
// string for a non-empty word and the result is a fixed point, i.e.
// t.Strip(t.Strip(w)) == t.Strip(w).
func (t *Table) Strip(word string) string {
	if word == "" {
		return word
	}

	w := []rune(norm.NFC.String(word))
	for {
		w = t.settle(w)

		// Keep going until neither step changes the word so that the
		// result is a fixed point.
		trimmed, ok := trimEnding(w)
		if !ok {
			return string(w)
		}
		w = trimmed
	}
}

// settle runs passes over w until a full pass removes nothing.
func (t *Table) settle(w []rune) []rune {
	for {
		var changed bool
		for _, p := range t.prefixes {
			if len(p) < len(w) && hasPrefixFold(w, p) {
				w = w[len(p):]
				changed = true
			}
		}
		for _, s := range t.suffixes {
			if n := suffixLen(w, s); n > 0 && n < len(w) {
				w = w[:len(w)-n]
				changed = true
			}
		}
		if !changed {
			return w
		}
	}
}

// suffixLen returns the number of runes to remove from the end of w if it
// ends with s followed by up to maxLinking linking characters. It returns
// zero if s does not match.
func suffixLen(w, s []rune) int {
	for k := 0; k <= maxLinking && k+len(s) <= len(w); k++ {
		if k > 0 && !isLinking(w[len(w)-k]) {
			break
		}
		if hasSuffixFold(w[:len(w)-k], s) {
			return len(s) + k
		}
	}
	return 0
}

// trimEnding removes a trailing grammatical ending (a, i, o, e, optionally
// followed by j). It returns false if there is no ending or if removing it
// would leave nothing.
func trimEnding(w []rune) ([]rune, bool) {
	n := len(w)
	if n > 0 && unicode.ToLower(w[n-1]) == 'j' {
		n--
	}
	if n == 0 || !isEnding(w[n-1]) {
		return w, false
	}
	n--
	if n == 0 {
		return w, false
	}
	return w[:n], true
}

func isEnding(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'i', 'o', 'e':
		return true
	}
	return false
}

func isLinking(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'ŭ', 'j':
		return true
	}
	return false
}

func hasPrefixFold(w, p []rune) bool {
	if len(p) > len(w) {
		return false
	}
	for i, r := range p {
		if unicode.ToLower(w[i]) != r {
			return false
		}
	}
	return true
}

func hasSuffixFold(w, s []rune) bool {
	if len(s) > len(w) {
		return false
	}
	return hasPrefixFold(w[len(w)-len(s):], s)
}

func prepare(affixes []string) [][]rune {
	var out [][]rune
	for _, a := range affixes {
		a = strings.ToLower(norm.NFC.String(strings.TrimSpace(a)))
		if a == "" {
			continue
		}
		out = append(out, []rune(a))
	}
	slices.SortStableFunc(out, func(a, b []rune) int {
		return len(b) - len(a)
	})
	return out
}

func toStrings(affixes [][]rune) []string {
	out := make([]string, 0, len(affixes))
	for _, a := range affixes {
		out = append(out, string(a))
	}
	return out
}

