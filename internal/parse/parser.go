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
	"strings"

	"github.com/gorse-io/asmdiff/internal/normalize"
)

var instructionLineRe = regexp.MustCompile(`^\s*[0-9a-fA-F]+:\t`)

const binaryModeHeaderLines = 7

// Parse consumes raw objdump-style disassembly text and emits the
// structured Line stream described in the arch-driven pipeline: binary-mode
// header stripping, object-mode label/blank filtering, relocation fusion,
// source-annotation capture, delay-slot collapsing, diff-row abstraction and
// branch-target computation.
func Parse(raw string, cfg Config) ([]Line, error) {
	if cfg.Arch == nil {
		return nil, fmt.Errorf("parse: config has no architecture descriptor")
	}
	rawLines := strings.Split(raw, "\n")

	if !cfg.DiffObj {
		if len(rawLines) > 0 && strings.TrimSpace(rawLines[len(rawLines)-1]) == "" {
			rawLines = rawLines[:len(rawLines)-1]
		}
		if len(rawLines) > binaryModeHeaderLines {
			rawLines = rawLines[binaryModeHeaderLines:]
		} else {
			rawLines = nil
		}
	}

	d := cfg.Arch
	var (
		lines           []Line
		pendingSource   []string
		prevLikely      bool
		returnSeen      bool
		skipRemaining   = cfg.SkipLines
		normState       = normalize.NewState()
	)

	for _, rawLine := range rawLines {
		trimmed := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		if cfg.DiffObj && d.SymbolLabelRe.MatchString(strings.TrimSpace(trimmed)) {
			continue
		}

		if d.RelocationRe.MatchString(trimmed) {
			if d.Name == "aarch64" {
				continue
			}
			if len(lines) > 0 {
				relocLine := strings.TrimSpace(trimmed)
				last := &lines[len(lines)-1]
				fused, err := fuseReloc(last.Original, d.Name, relocLine)
				if err != nil {
					return nil, err
				}
				last.Original = fused
				last.NormalizedOriginal = normState.Original(last.Original, d, cfg.IgnoreLargeImms, cfg.IgnoreAddrDiffs)
				if !last.IsDelaySlot() {
					last.DiffRow = normalize.DiffRow(last.Original, last.Mnemonic, d)
				}
			}
			continue
		}

		looksLikeInstruction := instructionLineRe.MatchString(trimmed)
		if !looksLikeInstruction {
			if cfg.Source {
				pendingSource = append(pendingSource, strings.TrimSpace(trimmed))
			}
			continue
		}

		comment := extractComment(&trimmed, d)

		cols := strings.Split(trimmed, "\t")
		if len(cols) < 3 {
			continue
		}
		lineNum := sanitizeLineNum(cols[0])
		if cfg.BaseShift != 0 {
			lineNum = shiftLineNum(lineNum, cfg.BaseShift)
		}
		instrText := strings.TrimSpace(strings.Join(cols[2:], "\t"))
		if instrText == "" {
			continue
		}

		if skipRemaining > 0 {
			skipRemaining--
			continue
		}

		mnemonic := firstToken(instrText)
		if !d.AddressImmediateInstructions[mnemonic] {
			instrText = hexifyIntegers(instrText, d)
		}

		original := instrText
		normalizedOriginal := normState.Original(original, d, cfg.IgnoreLargeImms, cfg.IgnoreAddrDiffs)

		isBranch := d.BranchInstructions[mnemonic]
		isLikely := d.BranchLikelyInstructions[mnemonic]

		var target *string
		if isBranch {
			target = branchTarget(instrText, isLikely)
		}

		diffRow := normalize.DiffRow(original, mnemonic, d)

		if prevLikely {
			original = DelaySlotSentinel
			mnemonic = DelaySlotSentinel
			normalizedOriginal = DelaySlotSentinel
			diffRow = DelaySlotSentinel
			target = nil
		}
		prevLikely = isLikely

		line := Line{
			Mnemonic:           mnemonic,
			Original:           original,
			NormalizedOriginal: normalizedOriginal,
			DiffRow:            diffRow,
			LineNum:            lineNum,
			BranchTarget:       target,
			SourceLines:        pendingSource,
			Comment:            comment,
		}
		pendingSource = nil
		lines = append(lines, line)

		if returnSeen {
			break
		}
		if cfg.StopAtReturn && isReturnJump(instrText) {
			returnSeen = true
		}
	}

	return lines, nil
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// sanitizeLineNum strips the trailing colon and surrounding whitespace from
// an objdump offset column, e.g. "   40:" -> "40".
func sanitizeLineNum(col string) string {
	col = strings.TrimSpace(col)
	return strings.TrimSuffix(col, ":")
}

