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

// Command asmdiff is the CLI collaborator: it parses flags and an optional
// project config file into a differ.Config, reads the two disassembly
// files, and invokes the core. Nothing in this package touches the diff
// pipeline directly; it only resolves configuration and drives I/O.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorse-io/asmdiff/internal/differ"
	"github.com/gorse-io/asmdiff/internal/format"
	"github.com/gorse-io/asmdiff/internal/present"
	"github.com/gorse-io/asmdiff/internal/threeway"
	"github.com/gorse-io/asmdiff/internal/watch"
)

var command = &cobra.Command{
	Use:  "asmdiff base current",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		var state *threeway.State
		if cfg.Threeway != differ.ThreewayNone {
			state = threeway.NewState()
		}

		render := func() (string, error) {
			baseText, err := os.ReadFile(args[0])
			if err != nil {
				return "", fmt.Errorf("reading base: %w", err)
			}
			currentText, err := os.ReadFile(args[1])
			if err != nil {
				return "", fmt.Errorf("reading current: %w", err)
			}
			return differ.Run(string(baseText), string(currentText), cfg, state)
		}

		if !cfg.Watch {
			out, err := render()
			if err != nil {
				return err
			}
			return present.Pager(out)
		}

		return runWatch(cmd, args, cfg, render)
	},
}

func runWatch(cmd *cobra.Command, args []string, cfg differ.Config, render present.Render) error {
	httpAddr, _ := cmd.Flags().GetString("http")
	w, err := watch.New(args[0], args[1])
	if err != nil {
		return err
	}
	defer w.Close()

	if httpAddr != "" {
		server := present.NewServer(render)
		go server.ListenAndServe(httpAddr)
		fmt.Fprintf(os.Stdout, "serving on %s\n", httpAddr)
	}

	for range w.Rebuild {
		out, err := render()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if httpAddr == "" {
			fmt.Fprintln(os.Stdout, out)
		}
	}
	return nil
}

func init() {
	flags := command.PersistentFlags()
	flags.String("arch", "mips", "target architecture (mips, aarch64, ppc)")
	flags.Bool("diff-obj", false, "diff object-file disassembly (symbol labels, relocations) instead of whole-binary")
	flags.Bool("source", false, "capture interleaved source annotations")
	flags.Bool("source-old-binutils", false, "older binutils source-annotation format (accepted; the parser applies one source-line rule either way)")
	flags.Bool("inlines", false, "inlined-function source annotations (accepted; has no effect on the diff)")
	flags.String("threeway", "none", "threeway rendering mode: none, prev, base")
	flags.Bool("watch", false, "watch both files and re-render on change")
	flags.String("http", "", "serve the HTML render on this address instead of paging to stdout")
	flags.Int("base-shift", 0, "shift base line numbers by this many bytes")
	flags.Int("skip-lines", 0, "skip this many leading instruction lines")
	flags.String("end", "", "end address (whole-binary mode only; validated, not applied to the input text)")
	flags.Bool("show-branches", false, "annotate branch targets with arrows")
	flags.Bool("stop-at-return", false, "stop parsing at the first return instruction")
	flags.Bool("ignore-large-imms", false, "ignore differences in large immediates")
	flags.Bool("ignore-addr-diffs", false, "ignore differences in address-immediate targets")
	flags.String("algorithm", "levenshtein", "alignment algorithm: levenshtein or difflib")
	flags.Int("max-lines", 0, "truncate a function past this many instructions (0 = unlimited)")
	flags.Int("max-bytes", 0, "truncate a function past this many bytes of instruction text (0 = unlimited)")
	flags.Int("column-width", 50, "column width for plain/ansi rendering")
	flags.String("format", "plain", "output formatter: plain, ansi, html")
	flags.String("config", "", "path to an asmdiff.toml project config file")
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
