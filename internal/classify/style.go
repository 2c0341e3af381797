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

package classify

import (
	"regexp"
	"strings"

	"github.com/gorse-io/asmdiff/internal/arch"
	"github.com/gorse-io/asmdiff/internal/text"
)

// columns holds the four independent rotation namespaces the classifier
// tracks across an entire diff run: base/current each get their own
// register and stack dictionaries, so "the N-th distinct register in the
// left column" and "the N-th distinct register in the right column" land on
// the same rotation slot even when the register names differ.
type columns struct {
	baseReg   *rotationGroup
	curReg    *rotationGroup
	baseStack *rotationGroup
	curStack  *rotationGroup
}

func newColumns() *columns {
	return &columns{
		baseReg:   newRotationGroup(0),
		curReg:    newRotationGroup(0),
		baseStack: newRotationGroup(4),
		curStack:  newRotationGroup(4),
	}
}

func plainOrEmpty(s string) text.Text {
	return text.Plaintext(s)
}

func styleWhole(s string, k text.Kind) text.Text {
	if s == "" {
		return text.Text{}
	}
	return text.Styled(s, text.Format{Kind: k})
}

// mapRotation styles every match of re within s under group's namespace,
// assigning each distinct match text a stable rotation index.
func mapRotation(s string, re *regexp.Regexp, kind text.Kind, group string, g *rotationGroup) text.Text {
	return text.Map(text.Plaintext(s), re, func(match string) text.Text {
		return text.Styled(match, text.Format{
			Kind:  kind,
			Group: group,
			Index: g.get(match),
			Key:   match,
		})
	})
}

// mapImmediate styles every generic-immediate match with a single,
// non-rotated immediate color.
func mapImmediate(s string, d *arch.Descriptor) text.Text {
	return text.Map(text.Plaintext(s), d.GenericImmediateRe, func(match string) text.Text {
		return text.Styled(match, text.Format{Kind: text.Immediate})
	})
}

// maskNonStackImmediates replaces every generic-immediate match in s with
// "\x00", except matches that fall inside a stack-relative expression (a
// stack displacement like the 16 in 16(sp) also satisfies the generic
// immediate pattern, but it is not a generic immediate for classification
// purposes).
func maskNonStackImmediates(s string, d *arch.Descriptor) string {
	stackSpans := d.StackRelativeRe.FindAllStringIndex(s, -1)
	immSpans := d.GenericImmediateRe.FindAllStringIndex(s, -1)

	var b strings.Builder
	last := 0
	for _, im := range immSpans {
		if overlapsAny(im, stackSpans) {
			continue
		}
		b.WriteString(s[last:im[0]])
		b.WriteString("\x00")
		last = im[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func overlapsAny(span []int, spans [][]int) bool {
	for _, sp := range spans {
		if span[0] < sp[1] && sp[0] < span[1] {
			return true
		}
	}
	return false
}
