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

// Package carrier implements the native arithmetic domains that packed
// integers are unpacked into: uint32, uint64 and a 128-bit value type.
//
// Every operation works at the full width of the carrier and wraps modulo
// 2^Bits(). Reducing a result to a packed width is left to the caller, which
// usually means an And with Mask.
package carrier

import "lukechampine.com/uint128"

// Carrier is a constraint for the native types used as arithmetic domains.
type Carrier interface {
	uint32 | uint64 | uint128.Uint128
}

// Arith is the operation table for one carrier type. The implementations are
// zero-size types (W32, W64, W128), so a value of the type parameter can be
// declared and used without any setup:
//
//	var a A
//	sum := a.Add(x, y)
//
// The interface is sealed; only this package provides implementations.
type Arith[C Carrier] interface {
	// Bits returns the carrier width in bits.
	Bits() uint
	// Size returns the carrier width in bytes.
	Size() int

	Zero() C
	Ones() C
	FromUint64(v uint64) C

	// Wide zero-extends v to 128 bits.
	Wide(v C) uint128.Uint128
	// Narrow keeps the low Bits() bits of v.
	Narrow(v uint128.Uint128) C

	Add(a, b C) C
	Sub(a, b C) C
	Mul(a, b C) C
	// QuoRem panics if b is zero.
	QuoRem(a, b C) (q, r C)

	And(a, b C) C
	Or(a, b C) C
	Xor(a, b C) C
	Not(a C) C
	Lsh(a C, n uint) C
	Rsh(a C, n uint) C

	Cmp(a, b C) int
	IsZero(a C) bool

	LeadingZeros(a C) int
	TrailingZeros(a C) int
	OnesCount(a C) int
	Reverse(a C) C

	// Load reads Size() bytes in host byte order.
	Load(b []byte) C
	// Store writes Size() bytes in host byte order.
	Store(b []byte, v C)

	sealed()
}

// Mask returns the carrier value with the low bits bits set.
func Mask[C Carrier, A Arith[C]](bits uint) C {
	var a A
	if bits == 0 {
		return a.Zero()
	}
	return a.Rsh(a.Ones(), a.Bits()-bits)
}
