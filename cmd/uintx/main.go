// Copyright 2025 go-uintx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command uintx inspects packed unsigned integers and evaluates arithmetic on
// them under a chosen overflow policy.
//
// Usage:
//
//	uintx widths
//	uintx inspect --width 48 0x112233445566
//	uintx calc --width 24 --policy saturating add 0xfffffe 5
//	uintx convert --from 56 --to 24 0x11223344556677
//
// Numbers accept the prefixes 0x, 0o and 0b, and underscores between digits.
// Pass --verbose to log parsing and dispatch decisions to stderr.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	root := newRootCommand(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// app carries what every subcommand needs.
type app struct {
	out     io.Writer
	logger  *slog.Logger
	verbose bool
	json    bool
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "uintx",
		Short:         "Inspect and compute with packed unsigned integers (U24 … U120)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "print results as JSON")

	root.AddCommand(
		a.widthsCommand(),
		a.inspectCommand(),
		a.calcCommand(),
		a.convertCommand(),
	)
	return root
}
