// Copyright 2025 asmdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package format

import (
	"html"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gorse-io/asmdiff/internal/text"
)

// Table renders a two- or three-column grid of rows (header is optional;
// pass nil for none). Plain and Ansi pad with spaces to f.Width per column;
// Html emits a <table class="diff">, with a <thead> iff header is non-nil.
func (f Formatter) Table(header []string, rows [][]text.Text) string {
	if f.Kind == Html {
		return f.tableHTML(header, rows)
	}
	return f.tablePlainOrAnsi(header, rows)
}

func (f Formatter) tablePlainOrAnsi(header []string, rows [][]text.Text) string {
	var b strings.Builder
	if header != nil {
		for i, h := range header {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(padTo(h, f.Width))
		}
		b.WriteByte('\n')
	}
	for _, row := range rows {
		for i, col := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			rendered := f.Apply(col)
			pad := f.Width - runewidth.StringWidth(text.Plain(col))
			b.WriteString(rendered)
			if pad > 0 && i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func padTo(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

func (f Formatter) tableHTML(header []string, rows [][]text.Text) string {
	var b strings.Builder
	b.WriteString(`<table class="diff">`)
	if header != nil {
		b.WriteString("<thead><tr>")
		for _, h := range header {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(h))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, col := range row {
			b.WriteString("<td>")
			b.WriteString(f.Apply(col))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
