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
	"fmt"

	"github.com/gorse-io/asmdiff/internal/text"
)

const ansiReset = "\x1b[0m"

// ansiBasic maps a fixed Kind directly to an SGR code; RegDiff/StackDiff
// rotation is resolved separately by ansiCode via ansiRotationPalette.
var ansiBasic = map[text.Kind]string{
	text.Immediate:      "\x1b[36m", // cyan
	text.Stack:          "\x1b[36m",
	text.Register:       "\x1b[33m", // yellow
	text.DelaySlot:      "\x1b[2m", // dim
	text.DiffChange:     "\x1b[34m", // blue
	text.DiffAdd:        "\x1b[32m", // green
	text.DiffRemove:     "\x1b[31m", // red
	text.SourceFilename: "\x1b[35m", // magenta
	text.SourceFunction: "\x1b[35m",
	text.SourceOther:    "\x1b[2m",
	text.Branch:         "\x1b[90m", // bright black
}

// ansiRotationPalette is the 9-slot rotation color table for RegDiff and
// StackDiff, cycling so any number of distinct operands stays readable.
var ansiRotationPalette = []string{
	"\x1b[33m", "\x1b[32m", "\x1b[36m", "\x1b[35m", "\x1b[31m",
	"\x1b[93m", "\x1b[92m", "\x1b[96m", "\x1b[95m",
}

func applyAnsi(chunk string, fm text.Format) string {
	code := ansiCode(fm)
	if code == "" {
		return chunk
	}
	return fmt.Sprintf("%s%s%s", code, chunk, ansiReset)
}

func ansiCode(fm text.Format) string {
	switch fm.Kind {
	case text.RegDiff, text.StackDiff:
		return ansiRotationPalette[fm.Index%len(ansiRotationPalette)]
	case text.None:
		return ""
	default:
		return ansiBasic[fm.Kind]
	}
}
