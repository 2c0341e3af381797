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
	"github.com/gorse-io/asmdiff/internal/align"
	"github.com/gorse-io/asmdiff/internal/format"
)

// Threeway selects how (or whether) the three-column previous/current
// rendering is produced.
type Threeway int

const (
	ThreewayNone Threeway = iota
	ThreewayPrev
	ThreewayBase
)

// Config is the single resolved configuration value threaded through one
// Run call; the core holds no package-level mutable config state.
type Config struct {
	Arch string

	DiffObj           bool
	Source            bool
	SourceOldBinutils bool
	Inlines           bool

	Threeway Threeway
	// Watch reports whether the caller intends to invoke Run repeatedly as
	// part of a watch loop. Threeway rendering needs a second invocation to
	// produce anything, so it is rejected outside watch mode.
	Watch bool

	BaseShift int
	SkipLines int
	End       string

	ShowBranches    bool
	StopAtReturn    bool
	IgnoreLargeImms bool
	IgnoreAddrDiffs bool

	Algorithm align.Algorithm

	MaxFunctionSizeLines int
	MaxFunctionSizeBytes int

	ColumnWidth   int
	FormatterKind format.Kind
}

// DefaultConfig returns a Config with the spec's sensible defaults: plain
// formatter, 50-column width, Levenshtein alignment, threeway disabled.
func DefaultConfig() Config {
	return Config{
		ColumnWidth:   50,
		FormatterKind: format.Plain,
		Algorithm:     align.Levenshtein,
	}
}
