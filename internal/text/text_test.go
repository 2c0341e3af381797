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

package text

import (
	"regexp"
	"testing"
)

func TestPlain_Concat(t *testing.T) {
	a := Plaintext("addiu ")
	b := Styled("v0", Format{Kind: Register})
	got := Plain(Concat(a, b))
	want := "addiu v0"
	if got != want {
		t.Errorf("Plain(Concat) = %q, want %q", got, want)
	}
}

func TestMap_PreservesBoundaries(t *testing.T) {
	re := regexp.MustCompile(`v[01]`)
	in := Text{
		{Chunk: "addiu ", Format: Format{Kind: None}},
		{Chunk: "v0,zero,1", Format: Format{Kind: DiffChange}},
	}
	out := Map(in, re, func(match string) Text {
		return Styled(match, Format{Kind: Register})
	})
	if Plain(out) != "addiu v0,zero,1" {
		t.Errorf("Plain(out) = %q", Plain(out))
	}
	// The "addiu " segment must survive untouched since it has no match.
	if out[0].Chunk != "addiu " || out[0].Format.Kind != None {
		t.Errorf("first segment altered: %+v", out[0])
	}
	// The matched "v0" must carry the new Register format, but the
	// unmatched tail ",zero,1" must keep the original DiffChange format.
	foundReg, foundTail := false, false
	for _, seg := range out[1:] {
		if seg.Chunk == "v0" && seg.Format.Kind == Register {
			foundReg = true
		}
		if seg.Chunk == ",zero,1" && seg.Format.Kind == DiffChange {
			foundTail = true
		}
	}
	if !foundReg || !foundTail {
		t.Errorf("segments after map: %+v", out)
	}
}

func TestWidth(t *testing.T) {
	tx := Concat(Plaintext("ab"), Plaintext("cde"))
	if Width(tx) != 5 {
		t.Errorf("Width = %d, want 5", Width(tx))
	}
}
