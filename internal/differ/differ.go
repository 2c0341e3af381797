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

// Package differ is the core entry point: run_diff(base, current, config) ->
// rendered string. It is purely synchronous, holds no package-level mutable
// state, and is safe to call from any goroutine; everything it needs lives
// in its arguments and return value. Watchers, pagers and HTTP servers are
// collaborators that live outside this package and call back in.
package differ

import (
	"errors"

	"github.com/gorse-io/asmdiff/internal/align"
	"github.com/gorse-io/asmdiff/internal/classify"
	"github.com/gorse-io/asmdiff/internal/format"
	"github.com/gorse-io/asmdiff/internal/parse"
	"github.com/gorse-io/asmdiff/internal/text"
	"github.com/gorse-io/asmdiff/internal/threeway"
)

// truncationMarkerText is appended when a side's instruction count trips the
// configured size guard. Per the error taxonomy this is designed behavior,
// not an error: the size guard trips silently.
const truncationMarkerText = "; <truncated>"

// Run parses, aligns, classifies and renders base against current under
// cfg, optionally consulting and updating a threeway.State when cfg.Threeway
// is enabled. state may be nil when threeway rendering is not in use.
func Run(base, current string, cfg Config, state *threeway.State) (string, error) {
	d, err := cfg.Validate()
	if err != nil {
		return "", err
	}

	baseCfg := parse.Config{
		Arch:              d,
		DiffObj:           cfg.DiffObj,
		Source:            cfg.Source,
		SourceOldBinutils: cfg.SourceOldBinutils,
		StopAtReturn:      cfg.StopAtReturn,
		IgnoreLargeImms:   cfg.IgnoreLargeImms,
		IgnoreAddrDiffs:   cfg.IgnoreAddrDiffs,
		BaseShift:         cfg.BaseShift,
		SkipLines:         cfg.SkipLines,
	}
	curCfg := baseCfg
	curCfg.BaseShift = 0

	baseLines, err := parse.Parse(base, baseCfg)
	if err != nil {
		return "", wrapParseError(err)
	}
	curLines, err := parse.Parse(current, curCfg)
	if err != nil {
		return "", wrapParseError(err)
	}

	baseLines, baseTruncated := truncate(baseLines, cfg.MaxFunctionSizeLines, cfg.MaxFunctionSizeBytes)
	curLines, curTruncated := truncate(curLines, cfg.MaxFunctionSizeLines, cfg.MaxFunctionSizeBytes)

	pairs := align.Align(baseLines, curLines, cfg.Algorithm)
	outputLines := classify.Classify(pairs, d, cfg.ShowBranches)

	if baseTruncated || curTruncated {
		outputLines = append(outputLines, text.OutputLine{
			Current: text.Styled(truncationMarkerText, text.Format{Kind: text.SourceOther}),
		})
	}

	f := format.Formatter{Kind: cfg.FormatterKind, Width: cfg.ColumnWidth, RotationSlots: 9}

	if cfg.Threeway == ThreewayNone || state == nil {
		return renderTwoColumn(outputLines, f), nil
	}

	var rendered string
	if state.HasPrevious() {
		triples := threeway.Render(state.Previous(), outputLines)
		rendered = renderThreeColumn(triples, f)
	} else {
		rendered = renderTwoColumn(outputLines, f)
	}
	state.Commit(outputLines, mapMode(cfg.Threeway))
	return rendered, nil
}

func mapMode(t Threeway) threeway.Mode {
	switch t {
	case ThreewayBase:
		return threeway.ModeBase
	case ThreewayPrev:
		return threeway.ModePrev
	default:
		return threeway.ModeNone
	}
}

// truncate caps lines at maxLines (if positive) and at the point its
// cumulative byte size would exceed maxBytes (if positive), whichever comes
// first, reporting whether truncation occurred.
func truncate(lines []parse.Line, maxLines, maxBytes int) ([]parse.Line, bool) {
	if maxLines <= 0 && maxBytes <= 0 {
		return lines, false
	}
	limit := len(lines)
	if maxLines > 0 && maxLines < limit {
		limit = maxLines
	}
	if maxBytes > 0 {
		size := 0
		for i, l := range lines {
			size += len(l.Original)
			if size > maxBytes {
				if i < limit {
					limit = i
				}
				break
			}
		}
	}
	if limit >= len(lines) {
		return lines, false
	}
	return lines[:limit], true
}
