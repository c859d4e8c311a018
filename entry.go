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
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-espdic/match"
)

// ErrMalformedEntry indicates that a dictionary line has no separator
// between the headword and the glosses.
var ErrMalformedEntry = errors.New("malformed entry")

// Entry is a dictionary entry.
type Entry struct {
	line     string
	headword string
	glosses  []string
}

// ParseEntry parses a single dictionary line.
func ParseEntry(line string) (*Entry, error) {
	headword, rest, ok := match.Split(line)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}

	var glosses []string
	for _, g := range strings.Split(rest, ",") {
		if g = strings.TrimSpace(g); g != "" {
			glosses = append(glosses, g)
		}
	}

	return &Entry{
		line:     line,
		headword: headword,
		glosses:  glosses,
	}, nil
}

// Headword returns the entry's Esperanto headword.
func (e *Entry) Headword() string {
	return e.headword
}

// Glosses returns the entry's English glosses.
func (e *Entry) Glosses() []string {
	return e.glosses
}

// String returns the dictionary line exactly as it appears in the
// dictionary.
func (e *Entry) String() string {
	return e.line
}
