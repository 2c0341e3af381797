// Copyright 2022 gorse Project Authors
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

// Package arch is the registry of per-architecture disassembly descriptors.
// It is pure data: regex grammars, branch-instruction sets and a normalizer
// variant tag, compiled once at process start. The rest of the core is
// data-driven from a Descriptor and never special-cases an architecture name
// directly.
package arch

import (
	"fmt"
	"regexp"
	"sort"
)

// Normalizer selects which normalized_original strategy a Descriptor uses.
// Most architectures share the generic strategy; AArch64 additionally tracks
// adrp/ldr GOT-load pairs across lines.
type Normalizer int

const (
	// NormalizerGeneric strips large immediates and, when requested, address
	// targets, with no cross-line state.
	NormalizerGeneric Normalizer = iota
	// NormalizerAArch64ADRP additionally erases the immediate of a load/add
	// that consumes a preceding adrp's register, so GOT-relative addressing
	// sequences normalize identically regardless of the actual GOT layout.
	NormalizerAArch64ADRP
)

// Descriptor is an immutable, process-scope description of one instruction
// set's disassembly dialect. All regexes are precompiled; recompiling a
// pattern per line is a well known 10x slowdown on long functions.
type Descriptor struct {
	Name string

	IntegerRe           *regexp.Regexp
	CommentRe           *regexp.Regexp
	RegisterRe          *regexp.Regexp
	StackRelativeRe     *regexp.Regexp
	LargeImmediateRe    *regexp.Regexp
	GenericImmediateRe  *regexp.Regexp
	RelocationRe        *regexp.Regexp
	SymbolLabelRe       *regexp.Regexp

	// BranchInstructions are mnemonics whose last operand is a same-function
	// branch target (beq, bne, b, ...).
	BranchInstructions map[string]bool
	// BranchLikelyInstructions are the nullifying-delay-slot branch variants
	// (beql, bnel, ...). A strict subset of BranchInstructions.
	BranchLikelyInstructions map[string]bool
	// AddressImmediateInstructions are mnemonics whose operand is an address
	// immediate rather than a data immediate: branches plus jal, j, bl, adrp.
	AddressImmediateInstructions map[string]bool

	// ForbiddenNeighbors is the rune set that, when adjacent to a bare
	// decimal integer, means the integer is part of an identifier rather
	// than a true operand (e.g. the "0" in "v0").
	ForbiddenNeighbors string
	// ForbiddenNeighborRe is ForbiddenNeighbors precompiled as a
	// single-character class, so the hot parsing path never compiles a
	// regex per line.
	ForbiddenNeighborRe *regexp.Regexp

	// ObjdumpFlags are opaque to the core; passed through to the objdump
	// invocation collaborator.
	ObjdumpFlags []string

	// RelocationPrefix identifies which relocation dialect (R_MIPS_*,
	// R_PPC_*, R_AARCH64_*) this architecture's object-mode output uses.
	RelocationPrefix string

	Normalizer Normalizer
}

var registry = map[string]*Descriptor{}

// Register adds a descriptor to the registry. Called from each arch's
// init(); panics on duplicate registration since that indicates a
// programming error, not a data error.
func Register(d *Descriptor) {
	if _, ok := registry[d.Name]; ok {
		panic(fmt.Sprintf("arch: duplicate registration of %q", d.Name))
	}
	registry[d.Name] = d
}

// Get returns the descriptor for the named architecture.
func Get(name string) (*Descriptor, error) {
	if d, ok := registry[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unsupported architecture: %s (available: %v)", name, List())
}

// List returns the names of all registered architectures, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
