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

package classify

// rotationGroup assigns a stable index to each distinct key in order of
// first appearance, starting at base. Stack groups start at 4 so the first
// stack slots land on different palette colors than the first register
// slots.
type rotationGroup struct {
	index map[string]int
	next  int
}

func newRotationGroup(base int) *rotationGroup {
	return &rotationGroup{index: map[string]int{}, next: base}
}

func (g *rotationGroup) get(key string) int {
	if i, ok := g.index[key]; ok {
		return i
	}
	i := g.next
	g.index[key] = i
	g.next++
	return i
}
