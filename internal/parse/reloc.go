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
	"strconv"
	"strings"
)

// ppcArtifactAddendCeiling is the threshold above which a PPC absolute-addr
// relocation's addend is link-artifact noise rather than a real offset, per
// the source tool's observed objdump behavior.
const ppcArtifactAddendCeiling = 0x70000000

// relocWrap wraps a symbol (with its addend already folded in) the way the
// given relocation kind requires, keyed by the arch's relocation dialect. An
// unrecognized relocation kind is an arch coverage gap, not a data error, so
// it is reported rather than guessed at.
func relocWrap(archName, kind, symbol string) (string, error) {
	switch archName {
	case "ppc":
		suffix, err := ppcSuffix(kind)
		if err != nil {
			return "", err
		}
		return symbol + "@" + suffix, nil
	default: // mips
		wrapped, err := mipsWrap(kind)
		if err != nil {
			return "", err
		}
		return "%" + wrapped + "(" + symbol + ")", nil
	}
}

func mipsWrap(kind string) (string, error) {
	suffix := strings.TrimPrefix(kind, "R_MIPS_")
	switch suffix {
	case "HI16":
		return "hi", nil
	case "LO16":
		return "lo", nil
	case "GOT16", "CALL16", "GOT_PAGE", "GOT_DISP":
		return "got", nil
	case "GOT_OFST", "GOT_LO16":
		return "got_lo", nil
	case "GOT_HI16":
		return "got_hi", nil
	default:
		return "", &AnomalyError{Reason: fmt.Sprintf("unrecognized MIPS relocation kind %q", kind)}
	}
}

func ppcSuffix(kind string) (string, error) {
	suffix := strings.TrimPrefix(kind, "R_PPC_")
	switch {
	case strings.Contains(suffix, "HA"):
		return "ha", nil
	case strings.Contains(suffix, "HI"):
		return "h", nil
	case strings.Contains(suffix, "LO"):
		return "l", nil
	default:
		return "", &AnomalyError{Reason: fmt.Sprintf("unrecognized PPC relocation kind %q", kind)}
	}
}

// splitSymbolAddend splits "sym" or "sym+0xN" / "sym+N" into symbol and
// addend.
func splitSymbolAddend(rest string) (string, int64) {
	rest = strings.TrimSpace(rest)
	idx := strings.LastIndexByte(rest, '+')
	if idx < 0 {
		return rest, 0
	}
	sym := rest[:idx]
	addendText := strings.TrimPrefix(rest[idx+1:], "0x")
	addend, err := strconv.ParseInt(addendText, 16, 64)
	if err != nil {
		return rest, 0
	}
	return sym, addend
}

// fuseReloc rewrites prevOriginal (the instruction line a relocation line
// annotates) to replace its immediate/address operand with the symbolic
// relocation target. It locates the operand slot by the last comma,
// falling back to the last tab, then the last space.
func fuseReloc(prevOriginal, archName, relocLine string) (string, error) {
	fields := strings.Fields(relocLine)
	if len(fields) < 2 {
		return prevOriginal, nil
	}
	kind := fields[0]
	rest := strings.Join(fields[1:], " ")
	sym, addend := splitSymbolAddend(rest)

	if archName == "ppc" && absoluteAddrReloc(kind) && (addend > ppcArtifactAddendCeiling || addend < -ppcArtifactAddendCeiling) {
		addend = 0
	}

	var symbolRepr string
	if addend != 0 {
		symbolRepr = fmt.Sprintf("%s+0x%x", sym, addend)
	} else {
		symbolRepr = sym
	}
	wrapped, err := relocWrap(archName, kind, symbolRepr)
	if err != nil {
		return "", err
	}

	sepIdx, sepLen := -1, 0
	for _, sep := range []string{",", "\t", " "} {
		if idx := strings.LastIndex(prevOriginal, sep); idx >= 0 {
			sepIdx, sepLen = idx, len(sep)
			break
		}
	}
	if sepIdx < 0 {
		return prevOriginal, nil
	}
	return prevOriginal[:sepIdx+sepLen] + wrapped, nil
}

func absoluteAddrReloc(kind string) bool {
	return strings.Contains(kind, "ADDR16") || strings.Contains(kind, "ADDR32")
}
