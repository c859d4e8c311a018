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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"

	"github.com/ianlewis/go-espdic"
)

// printer writes the results for one query word.
type printer interface {
	Print(res *espdic.Result) error
}

// plainPrinter prints matching lines exactly as they appear in the
// dictionary.
type plainPrinter struct {
	w io.Writer
}

func (p *plainPrinter) Print(res *espdic.Result) error {
	for _, e := range res.Entries {
		if _, err := fmt.Fprintln(p.w, e); err != nil {
			return err
		}
	}
	return nil
}

// tablePrinter prints entries as a headword and glosses table. When grouped
// is set each word's table is preceded by a header naming the word.
type tablePrinter struct {
	w       io.Writer
	grouped bool

	printed int
}

func (p *tablePrinter) Print(res *espdic.Result) error {
	if p.grouped {
		if p.printed > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(p.w, "%s:\n", res.Query); err != nil {
			return err
		}
	}
	p.printed++

	if len(res.Entries) == 0 {
		return nil
	}

	tbl := table.New("Headword", "Glosses").WithWriter(p.w)
	for _, e := range res.Entries {
		tbl.AddRow(e.Headword(), glosses(e))
	}
	tbl.Print()
	return nil
}

// glosses joins an entry's glosses, decoding any HTML entities.
func glosses(e *espdic.Entry) string {
	return html2text.HTML2Text(strings.Join(e.Glosses(), ", "))
}
