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

import (
	"regexp"
	"strings"

	"github.com/ianlancetaylor/demangle"

	"github.com/gorse-io/asmdiff/internal/text"
)

// sourceFilenameRe matches an interleaved "path:line" annotation, the form
// objdump emits for a source-level location, e.g. "foo.c:10".
var sourceFilenameRe = regexp.MustCompile(`^\S+\.[a-zA-Z]{1,4}:\d+$`)

// sourceFunctionRe matches a function-signature annotation line, e.g.
// "int foo(int, int):".
var sourceFunctionRe = regexp.MustCompile(`\([^)]*\)\s*:?\s*$`)

// sourceLine classifies one captured source annotation and demangles it if
// it looks like a mangled C++ function signature. Demangling failure is
// caught and ignored by the library itself: Filter returns its input
// unchanged when it can't demangle, so there is no error path to handle.
func sourceLine(raw string) text.OutputLine {
	trimmed := strings.TrimSpace(raw)
	switch {
	case sourceFilenameRe.MatchString(trimmed):
		return text.OutputLine{Current: text.Styled(trimmed, text.Format{Kind: text.SourceFilename})}
	case sourceFunctionRe.MatchString(trimmed):
		demangled := demangle.Filter(trimmed)
		return text.OutputLine{Current: text.Styled(demangled, text.Format{Kind: text.SourceFunction})}
	default:
		return text.OutputLine{Current: text.Styled(trimmed, text.Format{Kind: text.SourceOther})}
	}
}
