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

// Package parse turns raw objdump-style disassembly text into a stream of
// structured Line records: relocation markers are fused into the
// instruction they annotate, source-code interleaving is captured and
// attached to the following instruction, and delay slots following a
// branch-likely instruction are collapsed to a sentinel.
package parse

// DelaySlotSentinel is both the mnemonic and the diff_row of a line that
// represents a branch-likely delay slot. The literal string must appear
// verbatim in DiffRow for alignment to treat all delay slots as equal
// regardless of their actual contents.
const DelaySlotSentinel = "<delay-slot>"

// Line is one parsed instruction.
type Line struct {
	// Mnemonic is the first whitespace-delimited token of Original, or
	// DelaySlotSentinel for a collapsed delay slot.
	Mnemonic string

	// Original is the cleaned instruction text: literals are still present
	// and may have been rewritten by relocation fusion.
	Original string

	// NormalizedOriginal is stable under differences the architecture
	// chooses to ignore (large immediates, adrp addends, ignored branch
	// targets). Two lines with equal NormalizedOriginal are "truly equal"
	// modulo those architecture-ignored differences.
	NormalizedOriginal string

	// DiffRow is the alignment key: no register names, no stack
	// displacements, no address immediates, only the mnemonic, structural
	// template and <imm> placeholders.
	DiffRow string

	// LineNum is the instruction's hex offset string.
	LineNum string

	// BranchTarget is the hex offset string of this instruction's branch
	// target, or nil if this is not a branch. For branch-likely variants
	// the value is pre-adjusted by -4.
	BranchTarget *string

	// SourceLines holds any interleaved source-code annotation lines
	// captured immediately before this instruction.
	SourceLines []string

	// Comment is the first "<...>" (or "//...") annotation extracted from
	// the objdump line, if any.
	Comment string
}

// IsDelaySlot reports whether this Line is a collapsed branch-likely delay
// slot.
func (l Line) IsDelaySlot() bool {
	return l.DiffRow == DelaySlotSentinel
}
