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

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) print(v any, text func(w *tabwriter.Writer)) error {
	if a.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func (a *app) widthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "widths",
		Short: "List the supported widths and their carriers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(widths, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "TYPE\tBYTES\tCARRIER\tMAX")
				for _, w := range widths {
					fmt.Fprintf(tw, "U%d\t%d\t%s\t%s\n", w.Bits, w.Bytes, w.Carrier, w.Max)
				}
			})
		},
	}
}

func (a *app) inspectCommand() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "inspect <value>",
		Short: "Show the bytes and bit counts of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := lookupWidth(bits)
			if err != nil {
				return err
			}
			a.logger.Debug("inspect", "width", w.Bits, "carrier", w.Carrier, "input", args[0])
			r, err := w.inspect(args[0])
			if err != nil {
				return err
			}
			return a.print(r, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "width\tU%d\n", r.Width)
				fmt.Fprintf(tw, "decimal\t%s\n", r.Decimal)
				fmt.Fprintf(tw, "hex\t%s\n", r.Hex)
				fmt.Fprintf(tw, "little-endian\t%s\n", r.LE)
				fmt.Fprintf(tw, "big-endian\t%s\n", r.BE)
				fmt.Fprintf(tw, "len\t%d\n", r.Len)
				fmt.Fprintf(tw, "leading zeros\t%d\n", r.LeadingZeros)
				fmt.Fprintf(tw, "trailing zeros\t%d\n", r.TrailingZeros)
				fmt.Fprintf(tw, "ones\t%d\n", r.OnesCount)
				fmt.Fprintf(tw, "hash\t%s\n", r.Hash)
			})
		},
	}
	cmd.Flags().IntVarP(&bits, "width", "w", 24, "bit width ("+widthNames()+")")
	return cmd
}

func (a *app) calcCommand() *cobra.Command {
	var (
		bits       int
		policyName string
	)
	cmd := &cobra.Command{
		Use:   "calc <op> <x> <y>",
		Short: "Evaluate x op y at a width",
		Long: "Evaluate x op y at a width. Operators: add, sub, mul, div, rem, and, or, xor.\n" +
			"The policy decides what happens when add, sub or mul leave the width:\n" +
			"checked fails, wrapping reduces, saturating clamps and overflowing reduces and reports.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := lookupWidth(bits)
			if err != nil {
				return err
			}
			p, err := parsePolicy(policyName)
			if err != nil {
				return err
			}
			a.logger.Debug("calc", "width", w.Bits, "policy", p, "op", args[0], "x", args[1], "y", args[2])
			r, err := w.calc(args[0], p, args[1], args[2])
			if err != nil {
				return err
			}
			return a.print(r, func(tw *tabwriter.Writer) {
				if r.Overflow {
					fmt.Fprintf(tw, "%s\t%s\toverflow\n", r.Value, r.Hex)
					return
				}
				fmt.Fprintf(tw, "%s\t%s\n", r.Value, r.Hex)
			})
		},
	}
	cmd.Flags().IntVarP(&bits, "width", "w", 24, "bit width ("+widthNames()+")")
	cmd.Flags().StringVarP(&policyName, "policy", "p", string(policyChecked), "overflow policy (checked, wrapping, saturating, overflowing)")
	return cmd
}

// conversion is the output of convert.
type conversion struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	Value    string `json:"value"`
	Lossless bool   `json:"lossless"`
}

func (a *app) convertCommand() *cobra.Command {
	var (
		from, to int
		strict   bool
	)
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value between widths, truncating when narrowing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := lookupWidth(from)
			if err != nil {
				return err
			}
			dst, err := lookupWidth(to)
			if err != nil {
				return err
			}
			v, err := src.parse(args[0])
			if err != nil {
				return err
			}
			s, lossless := dst.fromU(v)
			a.logger.Debug("convert", "from", src.Bits, "to", dst.Bits, "lossless", lossless)
			if strict && !lossless {
				return fmt.Errorf("%s does not fit in %d bits", args[0], dst.Bits)
			}
			c := conversion{From: src.Bits, To: dst.Bits, Value: s, Lossless: lossless}
			return a.print(c, func(tw *tabwriter.Writer) {
				if lossless {
					fmt.Fprintln(tw, c.Value)
					return
				}
				fmt.Fprintf(tw, "%s\ttruncated\n", c.Value)
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 24, "source bit width")
	cmd.Flags().IntVar(&to, "to", 24, "target bit width")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of truncating")
	return cmd
}
