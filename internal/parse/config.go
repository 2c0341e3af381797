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

package parse

import "github.com/gorse-io/asmdiff/internal/arch"

// Config controls how raw disassembly text is turned into a Line stream.
type Config struct {
	Arch *arch.Descriptor

	// DiffObj selects object-file mode (symbol labels, per-line
	// relocations) over whole-binary mode (7-line header, no labels).
	DiffObj bool

	// Source, when set, captures interleaved source-code annotation lines
	// and attaches them to the following instruction.
	Source bool

	// SourceOldBinutils is carried for the older objdump source-interleaving
	// format. Parse does not read it: the same source-line rule applies
	// whether it is set or not.
	SourceOldBinutils bool

	// StopAtReturn stops parsing after emitting "jr ra" and its delay slot.
	StopAtReturn bool

	// IgnoreLargeImms widens NormalizedOriginal to treat large immediates
	// as architecture-ignored noise.
	IgnoreLargeImms bool

	// IgnoreAddrDiffs widens NormalizedOriginal to treat address-immediate
	// operands (branch/call targets) as architecture-ignored noise.
	IgnoreAddrDiffs bool

	// BaseShift is added to every parsed LineNum; only valid in
	// whole-binary mode (object mode + BaseShift is a config error, see
	// internal/differ).
	BaseShift int

	// SkipLines drops this many leading instructions after header/label
	// filtering, before any other rule is applied.
	SkipLines int
}
