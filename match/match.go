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

// Package match implements matching of query words against the headwords of
// ESPDIC dictionary lines.
//
// Lines have the form
//
//	headword : gloss, gloss, ...
//
// and only the headword, the text before the first colon that follows
// whitespace, is compared with the query. Comparisons are case-insensitive.
// The query is literal text: characters that are special in regular
// expressions have no special meaning.
package match

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-espdic/internal/folding"
)

// Split splits a dictionary line into its headword and the text following
// the separator. The headword has trailing whitespace removed. ok is false if
// the line has no separator.
func Split(line string) (headword, rest string, ok bool) {
	from := 0
	for {
		i := strings.IndexByte(line[from:], ':')
		if i < 0 {
			return "", "", false
		}
		i += from
		if prev, _ := utf8.DecodeLastRuneInString(line[:i]); i > 0 && unicode.IsSpace(prev) {
			return strings.TrimRightFunc(line[:i], unicode.IsSpace), line[i+1:], true
		}
		from = i + 1
	}
}

// Headword returns the headword of a dictionary line. ok is false if the line
// has no separator.
func Headword(line string) (string, bool) {
	h, _, ok := Split(line)
	return h, ok
}

// Matcher matches dictionary lines against a single query word.
type Matcher struct {
	mode Mode

	// word is the folded query.
	word string

	// lastIsWord is true if the last rune of word is a word rune.
	lastIsWord bool
}

// NewMatcher returns a Matcher for word using mode. It returns an error
// wrapping [ErrInvalidMatchMode] if mode is not a recognized mode.
func NewMatcher(word string, mode Mode) (*Matcher, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMatchMode, mode)
	}

	m := &Matcher{
		mode: mode,
		word: folding.Fold(word),
	}
	if last, _ := utf8.DecodeLastRuneInString(m.word); m.word != "" {
		m.lastIsWord = isWordRune(last)
	}
	return m, nil
}

// Mode returns the matcher's mode.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Word returns the folded query word.
func (m *Matcher) Word() string {
	return m.word
}

// Match reports whether the headword of line satisfies the matcher. Lines
// without a separator never match.
func (m *Matcher) Match(line string) bool {
	h, ok := Headword(line)
	if !ok {
		return false
	}
	return m.MatchFolded(folding.Fold(h))
}

// MatchFolded reports whether an already folded headword satisfies the
// matcher. See [folding.Fold].
func (m *Matcher) MatchFolded(h string) bool {
	w := m.word
	if w == "" {
		return false
	}

	switch m.mode {
	case Start:
		if !strings.HasPrefix(h, w) {
			return false
		}
		rest := h[len(w):]
		if rest == "" {
			return true
		}
		// The headword may only continue if there is no word boundary
		// after the query.
		next, _ := utf8.DecodeRuneInString(rest)
		return isWordRune(next) == m.lastIsWord
	case End:
		// A word boundary must follow the query, which always comes right
		// before the separator, so its last rune must be a word rune.
		return m.lastIsWord && len(h) > len(w) && strings.HasSuffix(h, w)
	case Anywhere:
		return strings.Contains(h, w)
	case Exact:
		return h == w
	}
	return false
}

// Filter returns the lines that match in their original order.
func (m *Matcher) Filter(lines []string) []string {
	var results []string
	for _, line := range lines {
		if m.Match(line) {
			results = append(results, line)
		}
	}
	return results
}

// Find returns the lines whose headword matches word under mode, unmodified
// and in their original order. It returns an error wrapping
// [ErrInvalidMatchMode] before looking at any line if mode is not a
// recognized mode.
func Find(word string, mode Mode, lines []string) ([]string, error) {
	m, err := NewMatcher(word, mode)
	if err != nil {
		return nil, err
	}
	return m.Filter(lines), nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
