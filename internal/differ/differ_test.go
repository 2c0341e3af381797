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
	"strings"
	"testing"

	"github.com/gorse-io/asmdiff/internal/format"
	"github.com/gorse-io/asmdiff/internal/threeway"
)

func mipsConfig() Config {
	c := DefaultConfig()
	c.Arch = "mips"
	c.DiffObj = true
	return c
}

func TestValidate_UnknownArch(t *testing.T) {
	c := DefaultConfig()
	c.Arch = "sh2"
	if _, err := c.Validate(); err == nil {
		t.Error("expected error for unknown architecture sh2")
	}
}

func TestValidate_BaseShiftWithObjectMode(t *testing.T) {
	c := mipsConfig()
	c.BaseShift = 4
	if _, err := c.Validate(); err == nil {
		t.Error("expected error for base-shift combined with object mode")
	}
}

func TestValidate_ThreewayWithoutWatch(t *testing.T) {
	c := mipsConfig()
	c.Threeway = ThreewayPrev
	c.Watch = false
	if _, err := c.Validate(); err == nil {
		t.Error("expected error for threeway without watch")
	}
}

func TestValidate_EndAddressWithObjectMode(t *testing.T) {
	c := mipsConfig()
	c.End = "0x100"
	if _, err := c.Validate(); err == nil {
		t.Error("expected error for end address combined with object mode")
	}
}

func TestRun_Identity(t *testing.T) {
	raw := "   0:\t24020001\taddiu\tv0,zero,1\n"
	c := mipsConfig()
	out, err := Run(raw, raw, c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "addiu") {
		t.Errorf("expected rendered output to contain the instruction, got %q", out)
	}
}

func TestRun_Insertion(t *testing.T) {
	c := mipsConfig()
	c.FormatterKind = format.Ansi
	current := "   0:\t24020001\taddiu\tv0,zero,1\n"
	out, err := Run("", current, c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ">") {
		t.Errorf("expected insert-prefixed row, got %q", out)
	}
}

func TestRun_ThreewayRollsForward(t *testing.T) {
	c := mipsConfig()
	c.Threeway = ThreewayPrev
	c.Watch = true
	state := threeway.NewState()

	first := "   0:\t24020001\taddiu\tv0,zero,1\n"
	second := "   0:\t24020001\taddiu\tv1,zero,1\n"

	if _, err := Run(first, first, c, state); err != nil {
		t.Fatal(err)
	}
	out, err := Run(first, second, c, state)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "previous") {
		t.Errorf("expected threeway header with 'previous' column, got %q", out)
	}
}

func TestRun_MaxFunctionSizeTruncates(t *testing.T) {
	c := mipsConfig()
	c.MaxFunctionSizeLines = 1
	raw := "   0:\t24020001\taddiu\tv0,zero,1\n   4:\t24020001\taddiu\tv0,zero,1\n"
	out, err := Run(raw, raw, c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "truncated") {
		t.Errorf("expected truncation marker in output, got %q", out)
	}
}
