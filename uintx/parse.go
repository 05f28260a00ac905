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

package uintx

import (
	"errors"
	"math/big"
	"strconv"

	"lukechampine.com/uint128"
)

// Parse interprets s in the given base (0, 2 to 36) and returns the value as
// width D. Base 0 selects the base from the prefix as strconv.ParseUint
// does. Errors are *strconv.NumError wrapping strconv.ErrSyntax for
// malformed input or strconv.ErrRange for values above the width's maximum.
func Parse[D Packed[D]](s string, base int) (D, error) {
	var d D
	bits := d.Bits()
	fn := "ParseU" + strconv.Itoa(bits)
	if bits <= 64 {
		v, err := strconv.ParseUint(s, base, bits)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				ne.Func = fn
			}
			return d, err
		}
		return d.withWide(uint128.From64(v)), nil
	}

	if base != 0 && (base < 2 || base > 36) {
		return d, &strconv.NumError{Func: fn, Num: s, Err: errors.New("invalid base " + strconv.Itoa(base))}
	}
	// big.Int accepts a sign; unsigned parsing must not.
	if s == "" || s[0] == '+' || s[0] == '-' {
		return d, &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return d, &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}
	}
	v, ok := FromBig[D](n)
	if !ok {
		return d, &strconv.NumError{Func: fn, Num: s, Err: strconv.ErrRange}
	}
	return v, nil
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of globals and tests.
func MustParse[D Packed[D]](s string, base int) D {
	v, err := Parse[D](s, base)
	if err != nil {
		panic(err)
	}
	return v
}
