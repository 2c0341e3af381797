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

var aarch64BranchLikely = map[string]bool{} // AArch64 has no nullifying delay-slot branch.

var aarch64Branch = map[string]bool{
	"b": true, "b.eq": true, "b.ne": true, "b.cs": true, "b.cc": true,
	"b.mi": true, "b.pl": true, "b.vs": true, "b.vc": true,
	"b.hi": true, "b.ls": true, "b.ge": true, "b.lt": true,
	"b.gt": true, "b.le": true, "b.al": true,
	"cbz": true, "cbnz": true, "tbz": true, "tbnz": true,
}

var aarch64AddressImmediate = union(aarch64Branch, map[string]bool{
	"bl": true, "adrp": true, "adr": true,
})

func init() {
	Register(&Descriptor{
		Name: "aarch64",

		IntegerRe:          regexp.MustCompile(`-?\b\d+\b`),
		CommentRe:          regexp.MustCompile(`<[^>]*>|//.*$`),
		RegisterRe:         regexp.MustCompile(`\b(?:[wx](?:[0-9]|[12][0-9]|3[01])|[wx]zr|sp)\b`),
		StackRelativeRe:    regexp.MustCompile(`\[sp,\s*#(-?(?:0x[0-9a-fA-F]+|\d+))\]`),
		LargeImmediateRe:   regexp.MustCompile(`#0x[0-9a-fA-F]{5,}\b`),
		GenericImmediateRe: regexp.MustCompile(`#-?(?:0x[0-9a-fA-F]+|\d+)`),
		RelocationRe:       regexp.MustCompile(`R_AARCH64_[A-Z0-9_]+`),
		SymbolLabelRe:      regexp.MustCompile(`^[0-9a-fA-F]+\s+<[^>]+>:\s*$`),

		BranchInstructions:           aarch64Branch,
		BranchLikelyInstructions:     aarch64BranchLikely,
		AddressImmediateInstructions: aarch64AddressImmediate,

		ForbiddenNeighbors:   "a-zA-Z_",
		ForbiddenNeighborRe: regexp.MustCompile(`[a-zA-Z_]`),
		ObjdumpFlags:       []string{"-d", "--no-show-raw-insn"},
		RelocationPrefix:   "R_AARCH64_",
		Normalizer:         NormalizerAArch64ADRP,
	})
}
