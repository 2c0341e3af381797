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

// Package normalize derives the two canonical strings the core works with:
// a diff key (very lossy, used only to drive alignment) and a normalized
// original (moderately lossy, used for equality once two lines are already
// paired up). Both are pure functions of one instruction's text and its
// architecture descriptor, except the AArch64 normalized-original variant,
// which additionally tracks adrp/ldr-or-add GOT-load pairs across a single
// function's lines.
package normalize

import (
	"strings"

	"github.com/gorse-io/asmdiff/internal/arch"
)

// State carries the cross-line memory the AArch64 normalizer needs. It is
// scoped to one parse of one function; construct a fresh State per side of a
// diff.
type State struct {
	pendingGOT map[string]bool
}

// NewState returns an empty normalizer state.
func NewState() *State {
	return &State{pendingGOT: map[string]bool{}}
}

// Original computes normalized_original for one already-hexified instruction
// line. ignoreLargeImms and ignoreAddrDiffs mirror the identically named
// diff config flags: they widen what the architecture is willing to ignore,
// but the function otherwise depends only on original and d, plus s's
// cross-line adrp state for the AArch64 variant.
func (s *State) Original(original string, d *arch.Descriptor, ignoreLargeImms, ignoreAddrDiffs bool) string {
	switch d.Normalizer {
	case arch.NormalizerAArch64ADRP:
		return s.aarch64(original, d, ignoreLargeImms, ignoreAddrDiffs)
	default:
		return generic(original, d, ignoreLargeImms, ignoreAddrDiffs)
	}
}

func generic(original string, d *arch.Descriptor, ignoreLargeImms, ignoreAddrDiffs bool) string {
	out := original
	if ignoreLargeImms && d.LargeImmediateRe != nil {
		out = d.LargeImmediateRe.ReplaceAllString(out, "<imm>")
	}
	if ignoreAddrDiffs {
		mnemonic := firstToken(out)
		if d.AddressImmediateInstructions[mnemonic] {
			out = replaceLastOperand(out, "<addr>")
		}
	}
	return out
}

func (s *State) aarch64(original string, d *arch.Descriptor, ignoreLargeImms, ignoreAddrDiffs bool) string {
	out := generic(original, d, ignoreLargeImms, ignoreAddrDiffs)
	mnemonic := firstToken(out)
	switch mnemonic {
	case "adrp":
		if reg := firstRegister(out, d); reg != "" {
			s.pendingGOT[reg] = true
		}
	case "ldr":
		if reg := bracketedRegister(out); reg != "" && s.pendingGOT[reg] {
			delete(s.pendingGOT, reg)
			out = d.GenericImmediateRe.ReplaceAllString(out, "<imm>")
		}
	case "add":
		regs := allRegisters(out, d)
		if len(regs) >= 2 && regs[0] == regs[1] && s.pendingGOT[regs[0]] {
			delete(s.pendingGOT, regs[0])
			out = d.GenericImmediateRe.ReplaceAllString(out, "<imm>")
		}
	}
	return out
}

// DiffRow computes the highly abstracted alignment key for one instruction:
// registers become <reg> and immediates (including a stripped branch
// target) become <imm>. The register pass runs first, and every registered
// descriptor's RegisterRe also matches the stack pointer (sp, r1), so a
// stack operand such as 0x10(sp) ends up as <imm>(<reg>); the addr(sp)
// rewrite applies only where StackRelativeRe still matches after that pass,
// which none of the registered descriptors produce.
func DiffRow(original string, mnemonic string, d *arch.Descriptor) string {
	out := d.RegisterRe.ReplaceAllString(original, "<reg>")
	out = d.StackRelativeRe.ReplaceAllString(out, "addr(sp)")
	if d.AddressImmediateInstructions[mnemonic] {
		out = replaceLastOperand(out, "<imm>")
	}
	out = d.GenericImmediateRe.ReplaceAllString(out, "<imm>")
	return out
}

func firstToken(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s
	}
	return s[:i]
}

// replaceLastOperand replaces the last comma-separated operand (or, for a
// single-operand instruction, everything after the mnemonic) with repl.
func replaceLastOperand(s string, repl string) string {
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		return strings.TrimRight(s[:idx], " ") + ", " + repl
	}
	fields := strings.Fields(s)
	if len(fields) <= 1 {
		return s
	}
	return fields[0] + " " + repl
}

func firstRegister(s string, d *arch.Descriptor) string {
	loc := d.RegisterRe.FindString(s)
	return loc
}

func allRegisters(s string, d *arch.Descriptor) []string {
	return d.RegisterRe.FindAllString(s, -1)
}

// bracketedRegister extracts the register named inside the first "[...]"
// group of a load/store operand, e.g. "ldr x0, [x1]" -> "x1".
func bracketedRegister(s string) string {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return ""
	}
	closeAt := strings.IndexByte(s[open:], ']')
	if closeAt < 0 {
		return ""
	}
	inner := s[open+1 : open+closeAt]
	inner = strings.SplitN(inner, ",", 2)[0]
	return strings.TrimSpace(inner)
}
