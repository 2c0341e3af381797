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

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorse-io/asmdiff/internal/arch"
)

// extractComment removes the first "<...>" (or "//..." for architectures
// whose CommentRe includes it) annotation from trimmed and returns its
// inner text.
func extractComment(trimmed *string, d *arch.Descriptor) string {
	m := d.CommentRe.FindString(*trimmed)
	if m == "" {
		return ""
	}
	*trimmed = strings.Replace(*trimmed, m, "", 1)
	if strings.HasPrefix(m, "//") {
		return strings.TrimSpace(strings.TrimPrefix(m, "//"))
	}
	return strings.TrimSuffix(strings.TrimPrefix(m, "<"), ">")
}

// shiftLineNum adds shift to a hex offset string, used to re-align line
// numbers when the base binary has a different load bias than current.
func shiftLineNum(lineNum string, shift int) string {
	v, err := strconv.ParseInt(lineNum, 16, 64)
	if err != nil {
		return lineNum
	}
	return strconv.FormatInt(v+int64(shift), 16)
}

var decimalRunRe = regexp.MustCompile(`\d+`)

// hexifyIntegers rewrites every bare decimal integer in s to 0x form,
// unless it is adjacent to one of the architecture's forbidden-neighbor
// characters (letters, underscore) which would indicate the digits are
// part of an identifier rather than a literal operand.
func hexifyIntegers(s string, d *arch.Descriptor) string {
	forbidden := d.ForbiddenNeighborRe
	locs := decimalRunRe.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		before := start > 0 && forbidden.MatchString(s[start-1:start])
		after := end < len(s) && forbidden.MatchString(s[end:end+1])
		if before || after {
			continue
		}
		b.WriteString(s[last:start])
		n, err := strconv.ParseUint(s[start:end], 10, 64)
		if err != nil {
			b.WriteString(s[start:end])
			last = end
			continue
		}
		b.WriteString(fmt.Sprintf("0x%x", n))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}
