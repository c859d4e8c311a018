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

package espdic

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-espdic/affix"
	"github.com/ianlewis/go-espdic/internal/folding"
	"github.com/ianlewis/go-espdic/internal/index"
	"github.com/ianlewis/go-espdic/match"
)

// maxLineSize is the longest dictionary line that can be read.
const maxLineSize = 1024 * 1024

const bom = "\ufeff"

// SearchOptions are options for searching a Dictionary.
type SearchOptions struct {
	// Mode is the match mode.
	Mode match.Mode

	// RootsOnly strips affixes from the query before searching.
	RootsOnly bool

	// XSystem converts x-system digraphs (e.g. "cx") in the query to
	// accented letters.
	XSystem bool

	// Affixes is the affix table used when RootsOnly is true. The default
	// table is used if nil.
	Affixes *affix.Table
}

// DefaultSearchOptions is the default options for a search.
var DefaultSearchOptions = &SearchOptions{
	Mode: match.Start,
}

// Result holds the entries found for one query word.
type Result struct {
	// Query is the word as given by the caller.
	Query string

	// Root is the normalized query used for matching. It differs from Query
	// when affixes were stripped or the query was normalized.
	Root string

	// Entries are the matching entries in dictionary order.
	Entries []*Entry
}

// headword is an index entry.
type headword struct {
	folded string
	line   int
}

// Dictionary is an ESPDIC dictionary loaded into memory. A Dictionary is not
// safe for concurrent use.
type Dictionary struct {
	lines []string

	// index is built on first use.
	index *index.Index[headword]
}

// Open opens the dictionary at the given path. Files ending in .gz are read
// as gzip and files ending in .dz are read as dictzip.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	d, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// New reads a dictionary from r.
func New(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		line := strings.TrimSuffix(s.Text(), "\r")
		if len(d.lines) == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		d.lines = append(d.lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning dictionary: %w", err)
	}

	return d, nil
}

// Lines returns the dictionary's lines in file order.
func (d *Dictionary) Lines() []string {
	return d.lines
}

// Len returns the number of lines in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.lines)
}

// Search searches the dictionary for word. It returns an error wrapping
// [match.ErrInvalidMatchMode] if the options specify an unknown mode.
func (d *Dictionary) Search(word string, opts *SearchOptions) (*Result, error) {
	if opts == nil {
		opts = DefaultSearchOptions
	}

	m, root, err := newMatcher(word, opts)
	if err != nil {
		return nil, err
	}

	var lines []string
	switch opts.Mode {
	case match.Start, match.Exact:
		lines = d.searchIndex(m)
	default:
		lines = m.Filter(d.lines)
	}

	res := &Result{
		Query: word,
		Root:  root,
	}
	for _, line := range lines {
		// Matched lines always have a separator.
		e, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

// SearchAll searches the dictionary for each word in order. On error it
// returns the results for the words before the failing word.
func (d *Dictionary) SearchAll(words []string, opts *SearchOptions) ([]*Result, error) {
	var results []*Result
	for _, w := range words {
		res, err := d.Search(w, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// searchIndex uses the headword index to find matching lines. Start and
// exact matches both require the folded headword to begin with the folded
// query so only that range of the index is checked.
func (d *Dictionary) searchIndex(m *match.Matcher) []string {
	if d.index == nil {
		d.index = newIndex(d.lines)
	}

	var candidates []headword
	if m.Mode() == match.Exact {
		candidates = d.index.Search(m.Word())
	} else {
		candidates = d.index.Prefix(m.Word())
	}

	var found []int
	for _, c := range candidates {
		if m.MatchFolded(c.folded) {
			found = append(found, c.line)
		}
	}
	slices.Sort(found)

	var lines []string
	for _, i := range found {
		lines = append(lines, d.lines[i])
	}
	return lines
}

func newIndex(lines []string) *index.Index[headword] {
	var words []headword
	for i, line := range lines {
		h, ok := match.Headword(line)
		if !ok {
			continue
		}
		words = append(words, headword{
			folded: folding.Fold(h),
			line:   i,
		})
	}
	return index.New(words, func(h headword) string {
		return h.folded
	})
}

// newMatcher validates the options and returns a matcher for the normalized
// and optionally stripped word.
func newMatcher(word string, opts *SearchOptions) (*match.Matcher, string, error) {
	if !opts.Mode.Valid() {
		return nil, "", fmt.Errorf("%w: %v", match.ErrInvalidMatchMode, opts.Mode)
	}

	root, err := folding.Query(word, opts.XSystem)
	if err != nil {
		return nil, "", err
	}
	if opts.RootsOnly {
		table := opts.Affixes
		if table == nil {
			table = affix.DefaultTable()
		}
		root = table.Strip(root)
	}

	m, err := match.NewMatcher(root, opts.Mode)
	if err != nil {
		return nil, "", err
	}
	return m, root, nil
}
