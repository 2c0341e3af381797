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

// Package align performs sequence alignment over two instruction streams'
// diff-row tokens, producing paired rows with insertions/deletions expressed
// as a missing side. Two algorithms are available: a minimal edit-distance
// aligner (Levenshtein) guarded by a cost budget, and a longest-common-
// subsequence aligner (difflib-style) used as its fallback, or on request
// for its tendency to produce longer equal runs at the cost of more total
// edits.
package align

import (
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"

	"github.com/gorse-io/asmdiff/internal/parse"
)

// Op is the alignment outcome for one paired row.
type Op int

const (
	OpEqual Op = iota
	OpReplace
	OpInsert
	OpDelete
)

// Pair is one row of the alignment: Base and/or Current may be nil to
// express an insertion or deletion.
type Pair struct {
	Base    *parse.Line
	Current *parse.Line
	Op      Op
}

// Algorithm selects the alignment strategy.
type Algorithm int

const (
	Levenshtein Algorithm = iota
	Difflib
)

// levenshteinTokenBudget bounds the number of distinct diff-row tokens the
// Levenshtein path accepts: the size of the Unicode code point space
// (0x110000), the limit of a one-code-point-per-token encoding.
// alignLevenshtein itself compares the diff-row strings directly.
const levenshteinTokenBudget = 0x110000

// levenshteinCostBudget bounds |a|*|b|, the size of the edit-distance DP
// matrix, heuristically: past this the O(n*m) table becomes impractical.
const levenshteinCostBudget = 4e8

// Align aligns base against current using the requested algorithm, silently
// falling back to the difflib-style aligner when Levenshtein's guards trip.
func Align(base, current []parse.Line, algorithm Algorithm) []Pair {
	if algorithm == Levenshtein && levenshteinFits(base, current) {
		return alignLevenshtein(base, current)
	}
	return alignDifflib(base, current)
}

func levenshteinFits(base, current []parse.Line) bool {
	distinct := lo.Uniq(append(append([]string{}, diffRows(base)...), diffRows(current)...))
	if len(distinct) >= levenshteinTokenBudget {
		return false
	}
	cost := float64(len(base)) * float64(len(current))
	return cost <= levenshteinCostBudget
}

// zipSpan pairs elements of baseSpan and curSpan positionally. bothPresentOp
// is the tag used when both sides have an element at a position (OpEqual or
// OpReplace); positions past the shorter span's length are refined to
// OpInsert or OpDelete instead, regardless of bothPresentOp.
func zipSpan(baseSpan, curSpan []parse.Line, bothPresentOp Op) []Pair {
	n := len(baseSpan)
	if len(curSpan) > n {
		n = len(curSpan)
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		var bp, cp *parse.Line
		if i < len(baseSpan) {
			bp = &baseSpan[i]
		}
		if i < len(curSpan) {
			cp = &curSpan[i]
		}
		switch {
		case bp == nil:
			pairs = append(pairs, Pair{Current: cp, Op: OpInsert})
		case cp == nil:
			pairs = append(pairs, Pair{Base: bp, Op: OpDelete})
		default:
			pairs = append(pairs, Pair{Base: bp, Current: cp, Op: bothPresentOp})
		}
	}
	return pairs
}

func diffRows(lines []parse.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.DiffRow
	}
	return out
}

// alignDifflib aligns using pmezard/go-difflib's SequenceMatcher, an
// LCS-with-anchoring algorithm that tends toward longer equal runs.
func alignDifflib(base, current []parse.Line) []Pair {
	matcher := difflib.NewMatcher(diffRows(base), diffRows(current))
	var pairs []Pair
	for _, op := range matcher.GetOpCodes() {
		baseSpan := base[op.I1:op.I2]
		curSpan := current[op.J1:op.J2]
		switch op.Tag {
		case 'e':
			pairs = append(pairs, zipSpan(baseSpan, curSpan, OpEqual)...)
		case 'r':
			pairs = append(pairs, zipSpan(baseSpan, curSpan, OpReplace)...)
		case 'd':
			pairs = append(pairs, zipSpan(baseSpan, curSpan, OpDelete)...)
		case 'i':
			pairs = append(pairs, zipSpan(baseSpan, curSpan, OpInsert)...)
		}
	}
	return pairs
}
