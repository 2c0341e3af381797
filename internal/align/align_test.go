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

package align

import (
	"testing"

	"github.com/gorse-io/asmdiff/internal/parse"
)

func rows(rows ...string) []parse.Line {
	lines := make([]parse.Line, len(rows))
	for i, r := range rows {
		lines[i] = parse.Line{DiffRow: r, Mnemonic: r}
	}
	return lines
}

func opsOf(pairs []Pair) []Op {
	ops := make([]Op, len(pairs))
	for i, p := range pairs {
		ops[i] = p.Op
	}
	return ops
}

func TestAlign_IdenticalYieldsOnlyEqual(t *testing.T) {
	a := rows("addiu", "lw", "jr")
	for _, alg := range []Algorithm{Levenshtein, Difflib} {
		pairs := Align(a, a, alg)
		if len(pairs) != len(a) {
			t.Fatalf("alg=%v: got %d pairs, want %d", alg, len(pairs), len(a))
		}
		for _, p := range pairs {
			if p.Op != OpEqual || p.Base == nil || p.Current == nil {
				t.Errorf("alg=%v: pair %+v not equal/paired", alg, p)
			}
		}
	}
}

func TestAlign_PureInsertion(t *testing.T) {
	base := rows("a", "b")
	current := rows("a", "x", "b")
	for _, alg := range []Algorithm{Levenshtein, Difflib} {
		pairs := Align(base, current, alg)
		var inserted int
		for _, p := range pairs {
			if p.Op == OpInsert {
				inserted++
				if p.Base != nil || p.Current == nil {
					t.Errorf("alg=%v: insert pair malformed: %+v", alg, p)
				}
			}
		}
		if inserted != 1 {
			t.Errorf("alg=%v: got %d insertions, want 1", alg, inserted)
		}
	}
}

func TestAlign_PureDeletion(t *testing.T) {
	base := rows("a", "x", "b")
	current := rows("a", "b")
	for _, alg := range []Algorithm{Levenshtein, Difflib} {
		pairs := Align(base, current, alg)
		var deleted int
		for _, p := range pairs {
			if p.Op == OpDelete {
				deleted++
				if p.Current != nil || p.Base == nil {
					t.Errorf("alg=%v: delete pair malformed: %+v", alg, p)
				}
			}
		}
		if deleted != 1 {
			t.Errorf("alg=%v: got %d deletions, want 1", alg, deleted)
		}
	}
}

func TestAlign_ReplaceRefinesToInsertWhenLonger(t *testing.T) {
	base := rows("a", "x", "b")
	current := rows("a", "x1", "x2", "b")
	pairs := Align(base, current, Levenshtein)
	var inserts int
	for _, p := range pairs {
		if p.Op == OpInsert {
			inserts++
		}
	}
	if inserts == 0 {
		t.Errorf("expected at least one refined insertion in %+v", opsOf(pairs))
	}
}

func TestAlign_EmptyBase(t *testing.T) {
	current := rows("a", "b")
	pairs := Align(nil, current, Levenshtein)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	for _, p := range pairs {
		if p.Op != OpInsert {
			t.Errorf("pair %+v, want insert", p)
		}
	}
}

func TestAlign_EmptyCurrent(t *testing.T) {
	base := rows("a", "b")
	pairs := Align(base, nil, Levenshtein)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	for _, p := range pairs {
		if p.Op != OpDelete {
			t.Errorf("pair %+v, want delete", p)
		}
	}
}

func TestLevenshteinFits_TripsOnCostBudget(t *testing.T) {
	if levenshteinFits(make([]parse.Line, 30000), make([]parse.Line, 30000)) {
		t.Error("expected cost budget to trip at 9e8 comparisons")
	}
}

func TestAlign_DifflibRequestedDirectly(t *testing.T) {
	// Verifies the Difflib algorithm path runs when requested, independent
	// of the Levenshtein guard.
	base := rows("a", "b", "c")
	current := rows("a", "c")
	pairs := Align(base, current, Difflib)
	if len(pairs) == 0 {
		t.Fatal("expected non-empty alignment")
	}
}
