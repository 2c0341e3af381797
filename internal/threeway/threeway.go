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

// Package threeway compares a stored "previous" diff against a fresh diff of
// the same base, revealing what changed since the last rebuild independently
// of what differs from the base. Both diffs are chunked by base-anchored
// line; base-anchored positions zip directly, and the current-only runs
// between them (insertions, source annotations) are inner-diffed by key so
// that matching insertions across iterations align instead of each reading
// as a wholesale replacement.
package threeway

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/gorse-io/asmdiff/internal/text"
)

// Triple is one row of three-column output.
type Triple struct {
	Base     *text.Text
	Previous text.Text
	Current  text.Text
}

// Mode selects how the stored previous snapshot advances across calls.
type Mode int

const (
	// ModeNone disables threeway rendering; the caller should not construct
	// a State at all, but the zero value behaves as an always-empty snapshot.
	ModeNone Mode = iota
	// ModeBase pins the snapshot to the first diff ever committed.
	ModeBase
	// ModePrev rolls the snapshot forward to the most recent diff.
	ModePrev
)

// State holds the single "previous" snapshot the spec requires: exactly one,
// pinned or rolling depending on Mode.
type State struct {
	previous []text.OutputLine
	has      bool
}

func NewState() *State {
	return &State{}
}

func (s *State) HasPrevious() bool {
	return s.has
}

func (s *State) Previous() []text.OutputLine {
	return s.previous
}

// Commit records fresh as the new previous snapshot, according to mode:
// ModeBase only ever captures the first commit; ModePrev always overwrites.
func (s *State) Commit(fresh []text.OutputLine, mode Mode) {
	switch mode {
	case ModeBase:
		if !s.has {
			s.previous = fresh
			s.has = true
		}
	case ModePrev:
		s.previous = fresh
		s.has = true
	}
}

// chunkedDiff is one diff's lines split into base-anchored rows and the
// current-only runs ("chunks") that sit between them. len(chunks) ==
// len(anchors)+1; chunks[i] precedes anchors[i], and the last chunk trails
// the final anchor.
type chunkedDiff struct {
	chunks  [][]text.OutputLine
	anchors []text.OutputLine
}

func chunkByBase(lines []text.OutputLine) chunkedDiff {
	var cd chunkedDiff
	var cur []text.OutputLine
	for _, l := range lines {
		if l.Base != nil {
			cd.chunks = append(cd.chunks, cur)
			cd.anchors = append(cd.anchors, l)
			cur = nil
			continue
		}
		cur = append(cur, l)
	}
	cd.chunks = append(cd.chunks, cur)
	return cd
}

// Render compares a previous diff against a fresh one, both against the same
// base, yielding the three-column coordinator output.
func Render(previous, current []text.OutputLine) []Triple {
	prevCD := chunkByBase(previous)
	curCD := chunkByBase(current)

	n := len(prevCD.anchors)
	if len(curCD.anchors) > n {
		n = len(curCD.anchors)
	}

	var out []Triple
	for i := 0; i <= n; i++ {
		var prevChunk, curChunk []text.OutputLine
		if i < len(prevCD.chunks) {
			prevChunk = prevCD.chunks[i]
		}
		if i < len(curCD.chunks) {
			curChunk = curCD.chunks[i]
		}
		out = append(out, innerDiff(prevChunk, curChunk)...)

		if i < n {
			var prevAnchor, curAnchor *text.OutputLine
			if i < len(prevCD.anchors) {
				prevAnchor = &prevCD.anchors[i]
			}
			if i < len(curCD.anchors) {
				curAnchor = &curCD.anchors[i]
			}
			out = append(out, zipAnchor(prevAnchor, curAnchor))
		}
	}
	return out
}

func zipAnchor(prev, cur *text.OutputLine) Triple {
	switch {
	case prev != nil && cur != nil:
		return Triple{Base: cur.Base, Previous: prev.Current, Current: cur.Current}
	case cur != nil:
		return Triple{Base: cur.Base, Current: cur.Current}
	case prev != nil:
		return Triple{Base: prev.Base, Previous: prev.Current}
	default:
		return Triple{}
	}
}

func key(l text.OutputLine) string {
	if l.Key != nil {
		return *l.Key
	}
	return text.Plain(l.Current)
}

// innerDiff aligns two current-only runs by key (an LCS-with-anchoring
// match, matching the spec's note that difflib-style alignment is what
// recovers matching insertions across successive rebuilds), padding
// unmatched slots with blanks on the opposite side.
func innerDiff(prevChunk, curChunk []text.OutputLine) []Triple {
	if len(prevChunk) == 0 && len(curChunk) == 0 {
		return nil
	}
	prevKeys := make([]string, len(prevChunk))
	for i, l := range prevChunk {
		prevKeys[i] = key(l)
	}
	curKeys := make([]string, len(curChunk))
	for i, l := range curChunk {
		curKeys[i] = key(l)
	}

	matcher := difflib.NewMatcher(prevKeys, curKeys)
	var out []Triple
	for _, op := range matcher.GetOpCodes() {
		prevSpan := prevChunk[op.I1:op.I2]
		curSpan := curChunk[op.J1:op.J2]
		n := len(prevSpan)
		if len(curSpan) > n {
			n = len(curSpan)
		}
		for k := 0; k < n; k++ {
			var t Triple
			if k < len(prevSpan) {
				t.Previous = prevSpan[k].Current
			}
			if k < len(curSpan) {
				t.Current = curSpan[k].Current
				t.Base = curSpan[k].Base
			}
			out = append(out, t)
		}
	}
	return out
}
