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

// Package format renders a text.Text into a final string. Three variants
// share one tagged-union type rather than an interface per variant, since
// the formatter sits on the hot rendering path and a method table avoids
// per-call dynamic dispatch: Plain passes chunks through untouched, Ansi
// wraps them in SGR escapes with display-width-aware column padding, and
// Html escapes and wraps them in styled, hoverable spans.
package format

import (
	"github.com/gorse-io/asmdiff/internal/text"
)

// Kind selects which of the three formatter variants a Formatter renders as.
type Kind int

const (
	Plain Kind = iota
	Ansi
	Html
)

// Formatter is the tagged-union formatter value. Width applies to Plain and
// Ansi column padding; RotationSlots applies to Html's CSS class count (the
// ANSI variant derives its own slot count from a fixed palette).
type Formatter struct {
	Kind          Kind
	Width         int
	RotationSlots int
}

// ApplyFormat escapes and styles a single chunk according to f's Kind.
func (f Formatter) ApplyFormat(chunk string, fm text.Format) string {
	switch f.Kind {
	case Ansi:
		return applyAnsi(chunk, fm)
	case Html:
		return applyHTML(chunk, fm, f.RotationSlots)
	default:
		return chunk
	}
}

// Apply concatenates ApplyFormat over every segment of t.
func (f Formatter) Apply(t text.Text) string {
	var b []byte
	for _, seg := range t {
		b = append(b, f.ApplyFormat(seg.Chunk, seg.Format)...)
	}
	return string(b)
}
