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

package arch

import "regexp"

var ppcBranchLikely = map[string]bool{} // PowerPC has no nullifying delay-slot branch.

var ppcBranch = map[string]bool{
	"b": true, "beq": true, "bne": true, "blt": true, "bgt": true,
	"ble": true, "bge": true, "bdnz": true, "bdz": true,
}

var ppcAddressImmediate = union(ppcBranch, map[string]bool{
	"bl": true,
})

func init() {
	Register(&Descriptor{
		Name: "ppc",

		IntegerRe:          regexp.MustCompile(`-?\b\d+\b`),
		CommentRe:          regexp.MustCompile(`<[^>]*>|//.*$`),
		RegisterRe:         regexp.MustCompile(`\br(?:[0-9]|[12][0-9]|3[01])\b`),
		StackRelativeRe:    regexp.MustCompile(`(-?(?:0x[0-9a-fA-F]+|\d+))\(r1\)`),
		LargeImmediateRe:   regexp.MustCompile(`\b0x[0-9a-fA-F]{5,}\b`),
		GenericImmediateRe: regexp.MustCompile(`-?\b(?:0x[0-9a-fA-F]+|\d+)\b`),
		RelocationRe:       regexp.MustCompile(`R_PPC_[A-Z0-9_]+`),
		SymbolLabelRe:      regexp.MustCompile(`^[0-9a-fA-F]+\s+<[^>]+>:\s*$`),

		BranchInstructions:           ppcBranch,
		BranchLikelyInstructions:     ppcBranchLikely,
		AddressImmediateInstructions: ppcAddressImmediate,

		ForbiddenNeighbors:   "a-zA-Z_",
		ForbiddenNeighborRe: regexp.MustCompile(`[a-zA-Z_]`),
		ObjdumpFlags:       []string{"-d", "-m", "powerpc"},
		RelocationPrefix:   "R_PPC_",
		Normalizer:         NormalizerGeneric,
	})
}
