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
	"strings"
	"testing"

	"github.com/gorse-io/asmdiff/internal/text"
)

func TestPlain_PassesThrough(t *testing.T) {
	f := Formatter{Kind: Plain, Width: 10}
	out := f.Apply(text.Styled("addiu v0,zero,1", text.Format{Kind: text.Register}))
	if out != "addiu v0,zero,1" {
		t.Errorf("got %q, want unstyled passthrough", out)
	}
}

func TestAnsi_WrapsInEscapeCodes(t *testing.T) {
	f := Formatter{Kind: Ansi, Width: 10}
	out := f.Apply(text.Styled("v0", text.Format{Kind: text.Register}))
	if !strings.Contains(out, "\x1b[") || !strings.HasSuffix(out, ansiReset) {
		t.Errorf("expected SGR-wrapped output, got %q", out)
	}
}

func TestAnsi_RotationCyclesPalette(t *testing.T) {
	f := Formatter{Kind: Ansi}
	a := f.ApplyFormat("v0", text.Format{Kind: text.RegDiff, Index: 0})
	b := f.ApplyFormat("v0", text.Format{Kind: text.RegDiff, Index: len(ansiRotationPalette)})
	if a != b {
		t.Errorf("expected rotation index to cycle modulo palette size: %q vs %q", a, b)
	}
}

func TestHTML_EscapesAndWrapsSpan(t *testing.T) {
	f := Formatter{Kind: Html}
	out := f.Apply(text.Styled("a<b", text.Format{Kind: text.DiffChange}))
	if !strings.Contains(out, "&lt;") {
		t.Errorf("expected HTML-escaped content, got %q", out)
	}
	if !strings.Contains(out, `class="diff-change"`) {
		t.Errorf("expected diff-change class, got %q", out)
	}
}

func TestHTML_RotationAttributes(t *testing.T) {
	f := Formatter{Kind: Html, RotationSlots: 9}
	out := f.Apply(text.Styled("v0", text.Format{Kind: text.RegDiff, Group: "base-reg", Index: 0, Key: "v0"}))
	if !strings.Contains(out, `data-rotation="base-reg;v0"`) {
		t.Errorf("missing data-rotation attribute: %q", out)
	}
}

func TestTable_PlainPadsColumns(t *testing.T) {
	f := Formatter{Kind: Plain, Width: 6}
	out := f.Table(nil, [][]text.Text{
		{text.Plaintext("ab"), text.Plaintext("cd")},
	})
	if !strings.Contains(out, "ab    cd") {
		t.Errorf("expected padded columns, got %q", out)
	}
}

func TestTable_HTMLWrapsRows(t *testing.T) {
	f := Formatter{Kind: Html}
	out := f.Table([]string{"base", "current"}, [][]text.Text{
		{text.Plaintext("a"), text.Plaintext("b")},
	})
	if !strings.Contains(out, `<table class="diff">`) || !strings.Contains(out, "<thead>") {
		t.Errorf("expected table+thead, got %q", out)
	}
}
