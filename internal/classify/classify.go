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

// Package classify turns an aligned pair stream into styled output rows: it
// runs the equality ladder (exact equal, delay-slot, soft diff refined into
// imm/stack/reg categories, or hard replace/insert/delete), assigns stable
// rotation colors to operands, attaches branch arrows, and breaks out
// captured source annotations as standalone rows.
package classify

import (
	"github.com/gorse-io/asmdiff/internal/align"
	"github.com/gorse-io/asmdiff/internal/arch"
	"github.com/gorse-io/asmdiff/internal/parse"
	"github.com/gorse-io/asmdiff/internal/text"
)

// Classify converts an alignment into output rows ready for a formatter.
// showBranches enables in/out arrow annotation using each column's own set
// of branch targets.
func Classify(pairs []align.Pair, d *arch.Descriptor, showBranches bool) []text.OutputLine {
	cols := newColumns()

	baseLines := make([]*parse.Line, 0, len(pairs))
	curLines := make([]*parse.Line, 0, len(pairs))
	for _, p := range pairs {
		baseLines = append(baseLines, p.Base)
		curLines = append(curLines, p.Current)
	}
	baseTargets := targetSet(baseLines)
	curTargets := targetSet(curLines)

	var out []text.OutputLine
	for _, p := range pairs {
		if p.Current != nil {
			for _, s := range p.Current.SourceLines {
				out = append(out, sourceLine(s))
			}
		} else if p.Base != nil {
			for _, s := range p.Base.SourceLines {
				out = append(out, sourceLine(s))
			}
		}
		out = append(out, classifyPair(p, d, cols, showBranches, baseTargets, curTargets))
	}
	return out
}

func classifyPair(p align.Pair, d *arch.Descriptor, cols *columns, showBranches bool, baseTargets, curTargets map[string]bool) text.OutputLine {
	switch {
	case p.Base != nil && p.Current != nil:
		return classifyBoth(p.Base, p.Current, d, cols, showBranches, baseTargets, curTargets)
	case p.Base != nil:
		base := styleWhole(p.Base.Original, text.DiffRemove)
		if showBranches {
			base = annotateBranch(base, p.Base, baseTargets[p.Base.LineNum])
		}
		return text.OutputLine{Base: &base, Current: text.Text{}}
	case p.Current != nil:
		cur := styleWhole(p.Current.Original, text.DiffAdd)
		if showBranches {
			cur = annotateBranch(cur, p.Current, curTargets[p.Current.LineNum])
		}
		key := p.Current.Original
		return text.OutputLine{Current: cur, Key: &key}
	default:
		return text.Blank()
	}
}

func classifyBoth(base, current *parse.Line, d *arch.Descriptor, cols *columns, showBranches bool, baseTargets, curTargets map[string]bool) text.OutputLine {
	var baseText, curText text.Text

	switch {
	case base.IsDelaySlot() && current.IsDelaySlot():
		baseText = styleWhole(base.Original, text.DelaySlot)
		curText = styleWhole(current.Original, text.DelaySlot)

	case base.DiffRow == current.DiffRow && base.NormalizedOriginal == current.NormalizedOriginal:
		baseText = plainOrEmpty(base.Original)
		curText = plainOrEmpty(current.Original)

	case base.DiffRow == current.DiffRow:
		baseText, curText = softDiff(base, current, d, cols)

	default:
		baseText = styleWhole(base.Original, text.DiffChange)
		curText = styleWhole(current.Original, text.DiffChange)
	}

	if showBranches {
		baseText = annotateBranch(baseText, base, baseTargets[base.LineNum])
		curText = annotateBranch(curText, current, curTargets[current.LineNum])
	}

	key := current.Original
	return text.OutputLine{Base: &baseText, Current: curText, Key: &key}
}

// softDiff refines a diff_row-equal pair that nonetheless differs textually.
// A branch target is split off and compared first: two branches whose
// relative offsets agree are left uncolored regardless of their differing
// absolute targets, and a genuine relative-target divergence is highlighted
// outright. Otherwise the pair is classified by priority order: imm-only,
// then stack-only, then reg-diff.
func softDiff(base, current *parse.Line, d *arch.Descriptor, cols *columns) (text.Text, text.Text) {
	if base.BranchTarget != nil && current.BranchTarget != nil {
		baseRel, baseOk := relativeBranchOffset(base)
		curRel, curOk := relativeBranchOffset(current)
		if baseOk && curOk {
			if baseRel == curRel {
				return plainOrEmpty(base.Original), plainOrEmpty(current.Original)
			}
			return styleWhole(base.Original, text.DiffChange), styleWhole(current.Original, text.DiffChange)
		}
	}

	baseNoImm := maskNonStackImmediates(base.Original, d)
	curNoImm := maskNonStackImmediates(current.Original, d)
	if baseNoImm == curNoImm {
		return mapImmediate(base.Original, d), mapImmediate(current.Original, d)
	}

	baseNoStack := d.StackRelativeRe.ReplaceAllString(base.Original, "\x00")
	curNoStack := d.StackRelativeRe.ReplaceAllString(current.Original, "\x00")
	if baseNoStack == curNoStack {
		return mapRotation(base.Original, d.StackRelativeRe, text.StackDiff, "base-stack", cols.baseStack),
			mapRotation(current.Original, d.StackRelativeRe, text.StackDiff, "my-stack", cols.curStack)
	}

	return mapRotation(base.Original, d.RegisterRe, text.RegDiff, "base-reg", cols.baseReg),
		mapRotation(current.Original, d.RegisterRe, text.RegDiff, "my-reg", cols.curReg)
}
