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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder trims whitespace from both ends of a query and collapses
// internal runs of whitespace into a single ASCII space. Queries pasted from
// other documents often carry tabs or non-breaking spaces that would
// otherwise never match a headword.
type WhitespaceFolder struct {
	// seenText is true once a non-whitespace rune has been written.
	seenText bool

	// pending is true while inside a run of whitespace that follows text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			// Leading whitespace is dropped and trailing whitespace is
			// never flushed.
			w.pending = w.seenText
			nSrc += size
			continue
		}

		need := utf8.RuneLen(c)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		w.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
