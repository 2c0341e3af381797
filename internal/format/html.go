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
	"fmt"
	"html"
	"strings"

	"github.com/gorse-io/asmdiff/internal/text"
)

var htmlKindClass = map[text.Kind]string{
	text.Immediate:      "imm",
	text.Stack:          "stack",
	text.Register:       "reg",
	text.DelaySlot:      "delay-slot",
	text.DiffChange:     "diff-change",
	text.DiffAdd:        "diff-add",
	text.DiffRemove:     "diff-remove",
	text.SourceFilename: "src-filename",
	text.SourceFunction: "src-function",
	text.SourceOther:    "src-other",
	text.RegDiff:        "reg-diff",
	text.StackDiff:      "stack-diff",
	text.Branch:         "branch",
}

func applyHTML(chunk string, fm text.Format, rotationSlots int) string {
	escaped := html.EscapeString(chunk)
	class, ok := htmlKindClass[fm.Kind]
	if !ok {
		return escaped
	}

	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` class="%s"`, class)

	if fm.Kind == text.RegDiff || fm.Kind == text.StackDiff {
		slot := fm.Index
		if rotationSlots > 0 {
			slot = slot % rotationSlots
		}
		fmt.Fprintf(&attrs, ` data-rotation="%s;%s"`, html.EscapeString(fm.Group), html.EscapeString(fm.Key))
		fmt.Fprintf(&attrs, ` data-rotation-slot="%d"`, slot)
	}

	if fm.Kind == text.Branch {
		if fm.IsTarget {
			fmt.Fprintf(&attrs, ` id="branch-target-%s"`, html.EscapeString(fm.ToLine))
		} else {
			fmt.Fprintf(&attrs, ` data-branches-class="branch-%s" data-branch-target="%s"`,
				html.EscapeString(fm.FromLine), html.EscapeString(fm.ToLine))
		}
	}

	return fmt.Sprintf("<span%s>%s</span>", attrs.String(), escaped)
}
