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
	"strconv"

	"github.com/gorse-io/asmdiff/internal/parse"
	"github.com/gorse-io/asmdiff/internal/text"
)

// relativeBranchOffset returns l's branch target expressed relative to its
// own address (target - address), so two branches at different absolute
// addresses that jump the same relative distance compare equal.
func relativeBranchOffset(l *parse.Line) (int64, bool) {
	if l.BranchTarget == nil {
		return 0, false
	}
	addr, err := strconv.ParseInt(l.LineNum, 16, 64)
	if err != nil {
		return 0, false
	}
	target, err := strconv.ParseInt(*l.BranchTarget, 16, 64)
	if err != nil {
		return 0, false
	}
	return target - addr, true
}

// targetSet collects every LineNum referenced as a BranchTarget among lines,
// used to decide which lines need an in-arrow in their own column.
func targetSet(lines []*parse.Line) map[string]bool {
	targets := map[string]bool{}
	for _, l := range lines {
		if l != nil && l.BranchTarget != nil {
			targets[*l.BranchTarget] = true
		}
	}
	return targets
}

// annotateBranch prepends an in-arrow and/or out-arrow segment to t when
// showBranches is set and l participates in a branch, either as a target
// (some other line in this column jumps to it) or as a source (it jumps
// somewhere).
func annotateBranch(t text.Text, l *parse.Line, isTarget bool) text.Text {
	if l == nil {
		return t
	}
	var arrows text.Text
	if isTarget {
		arrows = text.Concat(arrows, text.Styled("~> ", text.Format{
			Kind:     text.Branch,
			ToLine:   l.LineNum,
			IsTarget: true,
		}))
	}
	if l.BranchTarget != nil {
		arrows = text.Concat(arrows, text.Styled("-> ", text.Format{
			Kind:     text.Branch,
			FromLine: l.LineNum,
			ToLine:   *l.BranchTarget,
			IsTarget: false,
		}))
	}
	if len(arrows) == 0 {
		return t
	}
	return text.Concat(arrows, t)
}
