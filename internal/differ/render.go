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

package differ

import (
	"github.com/gorse-io/asmdiff/internal/format"
	"github.com/gorse-io/asmdiff/internal/text"
	"github.com/gorse-io/asmdiff/internal/threeway"
)

// rowPrefixKinds is checked in priority order: the first Kind found among a
// row's segments determines its leading prefix character.
var rowPrefixKinds = []struct {
	kind   text.Kind
	prefix string
}{
	{text.DiffChange, "|"},
	{text.DiffAdd, ">"},
	{text.DiffRemove, "<"},
	{text.RegDiff, "r"},
	{text.StackDiff, "s"},
	{text.Immediate, "i"},
	{text.DelaySlot, "."},
}

func rowPrefix(ol text.OutputLine) string {
	for _, pk := range rowPrefixKinds {
		if hasKind(ol.Current, pk.kind) || (ol.Base != nil && hasKind(*ol.Base, pk.kind)) {
			return pk.prefix
		}
	}
	return " "
}

func hasKind(t text.Text, k text.Kind) bool {
	for _, seg := range t {
		if seg.Format.Kind == k {
			return true
		}
	}
	return false
}

func renderTwoColumn(lines []text.OutputLine, f format.Formatter) string {
	rows := make([][]text.Text, 0, len(lines))
	for _, l := range lines {
		prefix := text.Plaintext(rowPrefix(l))
		base := text.Text{}
		if l.Base != nil {
			base = *l.Base
		}
		rows = append(rows, []text.Text{
			text.Concat(prefix, base),
			l.Current,
		})
	}
	return f.Table(nil, rows)
}

func renderThreeColumn(triples []threeway.Triple, f format.Formatter) string {
	rows := make([][]text.Text, 0, len(triples))
	for _, t := range triples {
		base := text.Text{}
		if t.Base != nil {
			base = *t.Base
		}
		rows = append(rows, []text.Text{base, t.Previous, t.Current})
	}
	return f.Table([]string{"base", "previous", "current"}, rows)
}
