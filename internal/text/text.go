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

// Package text holds styling metadata out-of-band from the string content
// until final rendering. Building diffs over already-colored strings was the
// source engine's chief complexity source; keeping a Text value as an
// ordered sequence of (chunk, format) segments makes substitution and width
// computation trivial and correct, and lets three unrelated formatters share
// one representation.
package text

import (
	"regexp"

	"github.com/rivo/uniseg"
)

// Kind is a tagged union discriminator for Format. Using a struct with a
// Kind field (rather than an interface per variant) avoids dynamic dispatch
// on the formatter hot path.
type Kind int

const (
	None Kind = iota
	Immediate
	Stack
	Register
	DelaySlot
	DiffChange
	DiffAdd
	DiffRemove
	SourceFilename
	SourceFunction
	SourceOther
	RegDiff
	StackDiff
	Branch
)

// Format is the style tag attached to one Segment. Only the fields relevant
// to Kind are meaningful; the rest are zero.
type Format struct {
	Kind Kind

	// RegDiff / StackDiff: which rotation namespace this operand belongs to
	// ("base-reg", "my-reg", "base-stack", "my-stack"), its assigned
	// rotation slot, and the operand string that earned that slot.
	Group string
	Index int
	Key   string

	// Branch: arrow endpoints and whether this segment is the target end.
	FromLine string
	ToLine   string
	IsTarget bool
}

// Segment is one styled run of text.
type Segment struct {
	Chunk  string
	Format Format
}

// Text is an ordered, immutable-by-convention sequence of segments.
type Text []Segment

// Plain renders a Text to an unstyled string.
func Plain(t Text) string {
	if len(t) == 1 {
		return t[0].Chunk
	}
	out := make([]byte, 0, estimateLen(t))
	for _, seg := range t {
		out = append(out, seg.Chunk...)
	}
	return string(out)
}

func estimateLen(t Text) int {
	n := 0
	for _, seg := range t {
		n += len(seg.Chunk)
	}
	return n
}

// Plaintext builds a one-segment, unstyled Text (empty for an empty s).
func Plaintext(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{{Chunk: s}}
}

// Styled builds a one-segment Text with the given format.
func Styled(s string, f Format) Text {
	return Text{{Chunk: s, Format: f}}
}

// Concat appends the segments of b after a, returning a new Text.
func Concat(a, b Text) Text {
	out := make(Text, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Join concatenates several Text values with a plain separator between them.
func Join(parts []Text, sep string) Text {
	var out Text
	for i, p := range parts {
		if i > 0 && sep != "" {
			out = append(out, Segment{Chunk: sep})
		}
		out = append(out, p...)
	}
	return out
}

// Map finds all matches of re within each segment's chunk (never across
// segment boundaries, preserving the caller's existing boundaries outside
// the match) and replaces each match with the Text returned by fn. Text
// outside any match keeps the segment's original format.
func Map(t Text, re *regexp.Regexp, fn func(match string) Text) Text {
	out := make(Text, 0, len(t))
	for _, seg := range t {
		locs := re.FindAllStringIndex(seg.Chunk, -1)
		if locs == nil {
			out = append(out, seg)
			continue
		}
		pos := 0
		for _, loc := range locs {
			if loc[0] > pos {
				out = append(out, Segment{Chunk: seg.Chunk[pos:loc[0]], Format: seg.Format})
			}
			replacement := fn(seg.Chunk[loc[0]:loc[1]])
			out = append(out, replacement...)
			pos = loc[1]
		}
		if pos < len(seg.Chunk) {
			out = append(out, Segment{Chunk: seg.Chunk[pos:], Format: seg.Format})
		}
	}
	return out
}

// Width returns the number of grapheme clusters across all segments, using
// uniseg so combining marks and multi-rune clusters count as one column
// rather than inflating padding calculations.
func Width(t Text) int {
	n := 0
	for _, seg := range t {
		n += uniseg.GraphemeClusterCount(seg.Chunk)
	}
	return n
}

// OutputLine is one row of aligned output: an optional base-column Text, a
// mandatory current-column Text, and an optional equality key. Equality on
// Key (the unformatted current-side original) is the hinge the threeway
// coordinator uses to interdiff two successive runs of the same diff.
type OutputLine struct {
	Base    *Text
	Current Text
	Key     *string
}

// Blank returns a key-less, empty OutputLine, used to pad threeway columns
// when one side has no corresponding row.
func Blank() OutputLine {
	return OutputLine{Current: Text{}}
}
