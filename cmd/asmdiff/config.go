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

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gorse-io/asmdiff/internal/align"
	"github.com/gorse-io/asmdiff/internal/differ"
	"github.com/gorse-io/asmdiff/internal/format"
)

// projectConfig mirrors the subset of differ.Config a project can pin in an
// asmdiff.toml file; flags explicitly set on the command line override it.
type projectConfig struct {
	Arch         string `toml:"arch"`
	DiffObj      bool   `toml:"diff_obj"`
	Threeway     string `toml:"threeway"`
	Algorithm    string `toml:"algorithm"`
	Format       string `toml:"format"`
	ColumnWidth  int    `toml:"column_width"`
	ShowBranches bool   `toml:"show_branches"`
}

func loadProjectConfig(path string) (projectConfig, error) {
	var pc projectConfig
	if path == "" {
		return pc, nil
	}
	if _, err := os.Stat(path); err != nil {
		return pc, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &pc); err != nil {
		return pc, fmt.Errorf("config: %w", err)
	}
	return pc, nil
}

func resolveConfig(cmd *cobra.Command) (differ.Config, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	pc, err := loadProjectConfig(configPath)
	if err != nil {
		return differ.Config{}, err
	}

	cfg := differ.DefaultConfig()

	if pc.Arch != "" {
		cfg.Arch = pc.Arch
	}
	if pc.Threeway != "" {
		cfg.Threeway = parseThreeway(pc.Threeway)
	}
	if pc.Algorithm != "" {
		cfg.Algorithm = parseAlgorithm(pc.Algorithm)
	}
	if pc.Format != "" {
		cfg.FormatterKind = parseFormat(pc.Format)
	}
	if pc.ColumnWidth > 0 {
		cfg.ColumnWidth = pc.ColumnWidth
	}
	cfg.DiffObj = pc.DiffObj
	cfg.ShowBranches = pc.ShowBranches

	if flags.Changed("arch") {
		cfg.Arch, _ = flags.GetString("arch")
	}
	if flags.Changed("diff-obj") {
		cfg.DiffObj, _ = flags.GetBool("diff-obj")
	}
	cfg.Source, _ = flags.GetBool("source")
	cfg.SourceOldBinutils, _ = flags.GetBool("source-old-binutils")
	cfg.Inlines, _ = flags.GetBool("inlines")
	if flags.Changed("threeway") {
		tw, _ := flags.GetString("threeway")
		cfg.Threeway = parseThreeway(tw)
	}
	cfg.Watch, _ = flags.GetBool("watch")
	cfg.BaseShift, _ = flags.GetInt("base-shift")
	cfg.SkipLines, _ = flags.GetInt("skip-lines")
	cfg.End, _ = flags.GetString("end")
	if flags.Changed("show-branches") {
		cfg.ShowBranches, _ = flags.GetBool("show-branches")
	}
	cfg.StopAtReturn, _ = flags.GetBool("stop-at-return")
	cfg.IgnoreLargeImms, _ = flags.GetBool("ignore-large-imms")
	cfg.IgnoreAddrDiffs, _ = flags.GetBool("ignore-addr-diffs")
	if flags.Changed("algorithm") {
		alg, _ := flags.GetString("algorithm")
		cfg.Algorithm = parseAlgorithm(alg)
	}
	cfg.MaxFunctionSizeLines, _ = flags.GetInt("max-lines")
	cfg.MaxFunctionSizeBytes, _ = flags.GetInt("max-bytes")
	if flags.Changed("column-width") {
		cfg.ColumnWidth, _ = flags.GetInt("column-width")
	}
	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		cfg.FormatterKind = parseFormat(f)
	}

	return cfg, nil
}

func parseThreeway(s string) differ.Threeway {
	switch s {
	case "prev":
		return differ.ThreewayPrev
	case "base":
		return differ.ThreewayBase
	default:
		return differ.ThreewayNone
	}
}

func parseAlgorithm(s string) align.Algorithm {
	if s == "difflib" {
		return align.Difflib
	}
	return align.Levenshtein
}

func parseFormat(s string) format.Kind {
	switch s {
	case "ansi":
		return format.Ansi
	case "html":
		return format.Html
	default:
		return format.Plain
	}
}
