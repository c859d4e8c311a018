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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// xsystem maps the base letter of an x-system digraph to its accented letter.
var xsystem = map[rune]rune{
	'c': 'ĉ', 'g': 'ĝ', 'h': 'ĥ', 'j': 'ĵ', 's': 'ŝ', 'u': 'ŭ',
	'C': 'Ĉ', 'G': 'Ĝ', 'H': 'Ĥ', 'J': 'Ĵ', 'S': 'Ŝ', 'U': 'Ŭ',
}

// XSystem converts Esperanto x-system digraphs (cx, gx, hx, jx, sx, ux) to
// the accented letters they stand for. The case of the base letter is kept
// and the x may be either case, so "Cx" and "CX" both become "Ĉ".
type XSystem struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (XSystem) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		accented, ok := xsystem[c]
		if ok {
			rest := src[nSrc+size:]
			if len(rest) == 0 && !atEOF {
				// The digraph may continue in the next chunk.
				return nDst, nSrc, transform.ErrShortSrc
			}
			if len(rest) > 0 && (rest[0] == 'x' || rest[0] == 'X') {
				c = accented
				size++
			}
		}

		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}
