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
	"testing"

	"github.com/gorse-io/asmdiff/internal/align"
	"github.com/gorse-io/asmdiff/internal/arch"
	"github.com/gorse-io/asmdiff/internal/parse"
	"github.com/gorse-io/asmdiff/internal/text"
)

func mipsDescriptor(t *testing.T) *arch.Descriptor {
	t.Helper()
	d, err := arch.Get("mips")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestClassify_ExactEqual(t *testing.T) {
	d := mipsDescriptor(t)
	l := &parse.Line{Mnemonic: "addiu", Original: "addiu v0,zero,0x1", NormalizedOriginal: "addiu v0,zero,0x1", DiffRow: "addiu <imm>"}
	pairs := []align.Pair{{Base: l, Current: l, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	row := out[0]
	if text.Plain(*row.Base) != l.Original || text.Plain(row.Current) != l.Original {
		t.Errorf("rendered text mismatch: %+v", row)
	}
	for _, seg := range row.Current {
		if seg.Format.Kind != text.None {
			t.Errorf("expected no styling on exact-equal row, got %+v", seg.Format)
		}
	}
}

func TestClassify_RegisterOnlyDiff_SharesRotationSlot(t *testing.T) {
	d := mipsDescriptor(t)
	base := &parse.Line{Mnemonic: "addiu", Original: "addiu v0,zero,0x1", NormalizedOriginal: "addiu v0,zero,0x1", DiffRow: "addiu <reg>,<reg>,<imm>"}
	cur := &parse.Line{Mnemonic: "addiu", Original: "addiu v1,zero,0x1", NormalizedOriginal: "addiu v1,zero,0x1", DiffRow: "addiu <reg>,<reg>,<imm>"}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]

	var baseIdx, curIdx int
	var baseFound, curFound bool
	for _, seg := range *row.Base {
		if seg.Chunk == "v0" {
			baseIdx = seg.Format.Index
			baseFound = true
		}
	}
	for _, seg := range row.Current {
		if seg.Chunk == "v1" {
			curIdx = seg.Format.Index
			curFound = true
		}
	}
	if !baseFound || !curFound {
		t.Fatalf("expected both v0 and v1 to be styled: base=%+v cur=%+v", *row.Base, row.Current)
	}
	if baseIdx != 0 || curIdx != 0 {
		t.Errorf("expected first rotation slot (0) on both sides, got base=%d cur=%d", baseIdx, curIdx)
	}
}

func TestClassify_StackOnlyDiff(t *testing.T) {
	d := mipsDescriptor(t)
	base := &parse.Line{Mnemonic: "lw", Original: "lw v0,16(sp)", NormalizedOriginal: "lw v0,16(sp)", DiffRow: "lw <reg>,<stack>"}
	cur := &parse.Line{Mnemonic: "lw", Original: "lw v0,20(sp)", NormalizedOriginal: "lw v0,20(sp)", DiffRow: "lw <reg>,<stack>"}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	var found bool
	for _, seg := range row.Current {
		if seg.Format.Kind == text.StackDiff {
			found = true
			if seg.Format.Index != 4 {
				t.Errorf("expected stack rotation to start at 4, got %d", seg.Format.Index)
			}
		}
	}
	if !found {
		t.Error("expected a StackDiff-styled segment")
	}
}

func TestClassify_Insertion(t *testing.T) {
	d := mipsDescriptor(t)
	cur := &parse.Line{Mnemonic: "addiu", Original: "addiu v0,zero,0x1", DiffRow: "addiu <reg>,<reg>,<imm>"}
	pairs := []align.Pair{{Current: cur, Op: align.OpInsert}}
	out := Classify(pairs, d, false)
	row := out[0]
	if row.Base != nil {
		t.Errorf("expected nil Base on an insertion row, got %+v", row.Base)
	}
	if row.Key == nil || *row.Key != cur.Original {
		t.Errorf("expected Key to be the current-side original")
	}
	for _, seg := range row.Current {
		if seg.Format.Kind != text.DiffAdd {
			t.Errorf("expected DiffAdd styling, got %+v", seg.Format)
		}
	}
}

func TestClassify_DelaySlotDim(t *testing.T) {
	d := mipsDescriptor(t)
	l := &parse.Line{Mnemonic: parse.DelaySlotSentinel, Original: parse.DelaySlotSentinel, NormalizedOriginal: parse.DelaySlotSentinel, DiffRow: parse.DelaySlotSentinel}
	pairs := []align.Pair{{Base: l, Current: l, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	for _, seg := range row.Current {
		if seg.Format.Kind != text.DelaySlot {
			t.Errorf("expected DelaySlot styling, got %+v", seg.Format)
		}
	}
}

func TestClassify_ImmOnlyDiff(t *testing.T) {
	d := mipsDescriptor(t)
	base := &parse.Line{Mnemonic: "addiu", Original: "addiu v0,zero,0x1", NormalizedOriginal: "addiu v0,zero,0x1", DiffRow: "addiu <reg>,<reg>,<imm>"}
	cur := &parse.Line{Mnemonic: "addiu", Original: "addiu v0,zero,0x2", NormalizedOriginal: "addiu v0,zero,0x2", DiffRow: "addiu <reg>,<reg>,<imm>"}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	var found bool
	for _, seg := range row.Current {
		if seg.Format.Kind == text.Immediate {
			found = true
		}
		if seg.Format.Kind == text.RegDiff || seg.Format.Kind == text.StackDiff {
			t.Errorf("expected no register/stack rotation styling on an imm-only diff, got %+v", seg.Format)
		}
	}
	if !found {
		t.Error("expected an Immediate-styled segment")
	}
}

func TestClassify_StackOnlyDiff_NotMistakenForImm(t *testing.T) {
	// The stack displacement digit (16/20) also matches the generic
	// immediate pattern; it must still classify as stack-only, not imm-only.
	d := mipsDescriptor(t)
	base := &parse.Line{Mnemonic: "lw", Original: "lw v0,16(sp)", NormalizedOriginal: "lw v0,16(sp)", DiffRow: "lw <reg>,<stack>"}
	cur := &parse.Line{Mnemonic: "lw", Original: "lw v0,20(sp)", NormalizedOriginal: "lw v0,20(sp)", DiffRow: "lw <reg>,<stack>"}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	for _, seg := range row.Current {
		if seg.Format.Kind == text.Immediate {
			t.Errorf("expected no plain Immediate styling on a stack-only diff, got %+v", seg.Format)
		}
	}
}

func TestClassify_BranchSameRelativeTarget_NotColored(t *testing.T) {
	d := mipsDescriptor(t)
	baseTarget := "108"
	curTarget := "10c"
	base := &parse.Line{Mnemonic: "beq", Original: "beq v0,zero,100", NormalizedOriginal: "beq v0,zero,100", DiffRow: "beq <reg>,<reg>,<imm>", LineNum: "100", BranchTarget: &baseTarget}
	cur := &parse.Line{Mnemonic: "beq", Original: "beq v0,zero,104", NormalizedOriginal: "beq v0,zero,104", DiffRow: "beq <reg>,<reg>,<imm>", LineNum: "104", BranchTarget: &curTarget}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	for _, seg := range row.Current {
		if seg.Format.Kind != text.None {
			t.Errorf("expected no styling when relative branch offsets agree, got %+v", seg.Format)
		}
	}
}

func TestClassify_BranchDifferentRelativeTarget_Highlighted(t *testing.T) {
	d := mipsDescriptor(t)
	baseTarget := "108"
	curTarget := "200"
	base := &parse.Line{Mnemonic: "beq", Original: "beq v0,zero,100", NormalizedOriginal: "beq v0,zero,100", DiffRow: "beq <reg>,<reg>,<imm>", LineNum: "100", BranchTarget: &baseTarget}
	cur := &parse.Line{Mnemonic: "beq", Original: "beq v0,zero,104", NormalizedOriginal: "beq v0,zero,104", DiffRow: "beq <reg>,<reg>,<imm>", LineNum: "104", BranchTarget: &curTarget}
	pairs := []align.Pair{{Base: base, Current: cur, Op: align.OpEqual}}
	out := Classify(pairs, d, false)
	row := out[0]
	var found bool
	for _, seg := range row.Current {
		if seg.Format.Kind == text.DiffChange {
			found = true
		}
	}
	if !found {
		t.Error("expected DiffChange styling when relative branch offsets disagree")
	}
}
