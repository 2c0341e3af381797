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

var mipsBranchLikely = map[string]bool{
	"beql": true, "bnel": true, "beqzl": true, "bnezl": true,
	"bgezl": true, "bgtzl": true, "blezl": true, "bltzl": true,
}

var mipsBranch = union(mipsBranchLikely, map[string]bool{
	"b": true, "beq": true, "bne": true, "beqz": true, "bnez": true,
	"bgez": true, "bgtz": true, "blez": true, "bltz": true,
	"bc1t": true, "bc1f": true,
})

var mipsAddressImmediate = union(mipsBranch, map[string]bool{
	"j": true, "jal": true,
})

func union(maps ...map[string]bool) map[string]bool {
	out := map[string]bool{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func init() {
	Register(&Descriptor{
		Name: "mips",

		IntegerRe:          regexp.MustCompile(`-?\b\d+\b`),
		CommentRe:          regexp.MustCompile(`<[^>]*>`),
		RegisterRe:         regexp.MustCompile(`\$?\b(?:zero|at|v[01]|a[0-3]|t[0-9]|s[0-8]|k[01]|gp|sp|fp|ra|f\d{1,2}|hi|lo)\b`),
		StackRelativeRe:    regexp.MustCompile(`(-?(?:0x[0-9a-fA-F]+|\d+))\(sp\)`),
		LargeImmediateRe:   regexp.MustCompile(`\b0x[0-9a-fA-F]{5,}\b`),
		GenericImmediateRe: regexp.MustCompile(`-?\b(?:0x[0-9a-fA-F]+|\d+)\b`),
		RelocationRe:       regexp.MustCompile(`R_MIPS_[A-Z0-9_]+`),
		SymbolLabelRe:      regexp.MustCompile(`^[0-9a-fA-F]+\s+<[^>]+>:\s*$`),

		BranchInstructions:           mipsBranch,
		BranchLikelyInstructions:     mipsBranchLikely,
		AddressImmediateInstructions: mipsAddressImmediate,

		ForbiddenNeighbors:   "a-zA-Z_",
		ForbiddenNeighborRe: regexp.MustCompile(`[a-zA-Z_]`),
		ObjdumpFlags:       []string{"-drz", "-m", "mips:4000"},
		RelocationPrefix:   "R_MIPS_",
		Normalizer:         NormalizerGeneric,
	})
}
