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

// Package folding implements text folding for dictionary queries and
// headwords.
package folding

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in NFC form with full Unicode case folding applied. Two
// strings that compare case-insensitively equal have the same folded form.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Query normalizes a user supplied query word. The word is converted to NFC,
// x-system digraphs are replaced if xsystem is true, and whitespace is
// folded. The case of the query is preserved.
func Query(word string, xsystem bool) (string, error) {
	t := []transform.Transformer{norm.NFC}
	if xsystem {
		t = append(t, &XSystem{})
	}
	t = append(t, &WhitespaceFolder{})

	folded, _, err := transform.String(transform.Chain(t...), word)
	if err != nil {
		return "", fmt.Errorf("folding query %q: %w", word, err)
	}
	return folded, nil
}
