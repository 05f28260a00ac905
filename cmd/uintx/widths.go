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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/go-uintx/uintx"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"lukechampine.com/uint128"
)

// number is the method set the command needs from a width.
type number[D any] interface {
	uintx.Packed[D]
	fmt.Formatter
	Text(base int) string
	AppendLE(dst []byte) []byte
	AppendBE(dst []byte) []byte
	Len() int
	LeadingZeros() int
	TrailingZeros() int
	OnesCount() int
	Hash() uint64

	OverflowingAdd(D) (D, bool)
	OverflowingSub(D) (D, bool)
	OverflowingMul(D) (D, bool)
	SaturatingAdd(D) D
	SaturatingSub(D) D
	SaturatingMul(D) D
	CheckedDiv(D) (D, bool)
	CheckedRem(D) (D, bool)
	And(D) D
	Or(D) D
	Xor(D) D
}

// width is one row of the width table, with its operations bound to the
// concrete type.
type width struct {
	Bits    int    `json:"bits"`
	Bytes   int    `json:"bytes"`
	Carrier string `json:"carrier"`
	Max     string `json:"max"`

	parse   func(s string) (uint128.Uint128, error)
	inspect func(s string) (report, error)
	calc    func(op string, p policy, x, y string) (result, error)
	fromU   func(v uint128.Uint128) (string, bool)
}

func newWidth[D number[D]](carrier string) width {
	var d D
	return width{
		Bits:    d.Bits(),
		Bytes:   d.Size(),
		Carrier: carrier,
		Max:     humanize.BigComma(uintx.Max[D]().Uint128().Big()),
		parse: func(s string) (uint128.Uint128, error) {
			v, err := uintx.Parse[D](s, 0)
			return v.Uint128(), err
		},
		inspect: inspectAs[D],
		calc:    calcAs[D],
		fromU: func(v uint128.Uint128) (string, bool) {
			d := uintx.FromUint128[D](v)
			return fmt.Sprintf("%#x", d), d.Uint128() == v
		},
	}
}

var widths = []width{
	newWidth[uintx.U24]("uint32"),
	newWidth[uintx.U40]("uint64"),
	newWidth[uintx.U48]("uint64"),
	newWidth[uintx.U56]("uint64"),
	newWidth[uintx.U72]("uint128"),
	newWidth[uintx.U80]("uint128"),
	newWidth[uintx.U88]("uint128"),
	newWidth[uintx.U96]("uint128"),
	newWidth[uintx.U104]("uint128"),
	newWidth[uintx.U112]("uint128"),
	newWidth[uintx.U120]("uint128"),
}

func lookupWidth(bits int) (width, error) {
	w, ok := lo.Find(widths, func(w width) bool { return w.Bits == bits })
	if !ok {
		return width{}, fmt.Errorf("unsupported width %d (want one of %s)", bits, widthNames())
	}
	return w, nil
}

func widthNames() string {
	return strings.Join(lo.Map(widths, func(w width, _ int) string { return strconv.Itoa(w.Bits) }), ", ")
}

// report is the output of inspect.
type report struct {
	Width         int    `json:"width"`
	Decimal       string `json:"decimal"`
	Hex           string `json:"hex"`
	LE            string `json:"le"`
	BE            string `json:"be"`
	Len           int    `json:"len"`
	LeadingZeros  int    `json:"leading_zeros"`
	TrailingZeros int    `json:"trailing_zeros"`
	OnesCount     int    `json:"ones"`
	Hash          string `json:"hash"`
}

func inspectAs[D number[D]](s string) (report, error) {
	v, err := uintx.Parse[D](s, 0)
	if err != nil {
		return report{}, err
	}
	return report{
		Width:         v.Bits(),
		Decimal:       humanize.BigComma(v.Uint128().Big()),
		Hex:           fmt.Sprintf("%#x", v),
		LE:            fmt.Sprintf("% x", v.AppendLE(nil)),
		BE:            fmt.Sprintf("% x", v.AppendBE(nil)),
		Len:           v.Len(),
		LeadingZeros:  v.LeadingZeros(),
		TrailingZeros: v.TrailingZeros(),
		OnesCount:     v.OnesCount(),
		Hash:          fmt.Sprintf("%016x", v.Hash()),
	}, nil
}

// policy selects how calc resolves a result outside the width.
type policy string

const (
	policyChecked     policy = "checked"
	policyWrapping    policy = "wrapping"
	policySaturating  policy = "saturating"
	policyOverflowing policy = "overflowing"
)

var policies = []policy{policyChecked, policyWrapping, policySaturating, policyOverflowing}

func parsePolicy(s string) (policy, error) {
	p := policy(strings.ToLower(s))
	if !slices.Contains(policies, p) {
		return "", fmt.Errorf("unknown policy %q (want one of %s)", s,
			strings.Join(lo.Map(policies, func(p policy, _ int) string { return string(p) }), ", "))
	}
	return p, nil
}

var operators = []string{"add", "sub", "mul", "div", "rem", "and", "or", "xor"}

// result is the output of calc.
type result struct {
	Value    string `json:"value"`
	Hex      string `json:"hex"`
	Overflow bool   `json:"overflow"`
}

var errUnknownOp = errors.New("unknown operator")

func calcAs[D number[D]](op string, p policy, xs, ys string) (result, error) {
	x, err := uintx.Parse[D](xs, 0)
	if err != nil {
		return result{}, err
	}
	y, err := uintx.Parse[D](ys, 0)
	if err != nil {
		return result{}, err
	}

	var (
		r    D
		over bool
		sat  func(D) D
	)
	switch op {
	case "add":
		r, over = x.OverflowingAdd(y)
		sat = x.SaturatingAdd
	case "sub":
		r, over = x.OverflowingSub(y)
		sat = x.SaturatingSub
	case "mul":
		r, over = x.OverflowingMul(y)
		sat = x.SaturatingMul
	case "div", "rem":
		ok := false
		if op == "div" {
			r, ok = x.CheckedDiv(y)
		} else {
			r, ok = x.CheckedRem(y)
		}
		if !ok {
			return result{}, uintx.ErrDivideByZero
		}
	case "and":
		r = x.And(y)
	case "or":
		r = x.Or(y)
	case "xor":
		r = x.Xor(y)
	default:
		return result{}, fmt.Errorf("%w %q (want one of %s)", errUnknownOp, op, strings.Join(operators, ", "))
	}

	if over {
		switch p {
		case policyChecked:
			return result{}, fmt.Errorf("%s %s %s: %w for %d bits", xs, op, ys, uintx.ErrOverflow, x.Bits())
		case policySaturating:
			r = sat(y)
		}
	}
	return result{
		Value:    fmt.Sprint(r),
		Hex:      fmt.Sprintf("%#x", r),
		Overflow: over && p == policyOverflowing,
	}, nil
}
