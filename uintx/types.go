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

// Package uintx provides unsigned integers of the non-native widths 24, 40,
// 48, 56, 72, 80, 88, 96, 104, 112 and 120 bits.
//
// A value occupies exactly as many bytes as its width needs, with no padding,
// so it can be embedded directly in records and wire frames. Arithmetic is
// done by unpacking into the smallest native carrier that holds the width
// (uint32, uint64 or a 128-bit value), computing there, then reducing or
// validating the result against the logical width before packing it again.
// Results therefore behave like an integer of exactly that width, not like
// the wider carrier.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-uintx/uintx"
//
//	a := uintx.NewU24(0x112233)
//	b := a.Add(uintx.NewU24(1))            // 0x112234
//	c := uintx.Max[uintx.U24]().WrappingAdd(uintx.NewU24(1)) // 0
//
//	// Overflow policy is chosen at the call site.
//	if _, ok := a.CheckedMul(a); !ok {
//		// out of range for 24 bits
//	}
//
// The stored bytes are in host byte order. Use LEBytes/BEBytes and
// FromLE/FromBE when the byte order on the wire matters.
package uintx

import (
	"github.com/ajroetker/go-uintx/internal/carrier"
	"lukechampine.com/uint128"
)

// Bytes is a constraint for the storage arrays of the supported widths.
type Bytes interface {
	[3]byte | [5]byte | [6]byte | [7]byte |
		[9]byte | [10]byte | [11]byte | [12]byte | [13]byte | [14]byte | [15]byte
}

// Uint is an unsigned integer of exactly 8*len(B) bits stored in len(B)
// bytes. C is the native carrier used for arithmetic and A the operation
// table for C.
//
// Uint values should be used through the aliases U24 … U120; those are the
// only instantiations this package supports. The zero value is 0.
type Uint[B Bytes, C carrier.Carrier, A carrier.Arith[C]] struct {
	b B
}

// Packed is satisfied by every width in this package. It lets generic
// functions such as Convert, From and Parse name a width with a single type
// argument:
//
//	v := uintx.From[uintx.U40](-1) // 0xFFFFFFFFFF
type Packed[D any] interface {
	comparable

	// Size returns the number of bytes in the representation.
	Size() int
	// Bits returns the logical bit width.
	Bits() int
	// CarrierSize returns the size in bytes of the native carrier.
	CarrierSize() int
	// Uint128 returns the value zero-extended to 128 bits.
	Uint128() uint128.Uint128
	// AppendNE appends the stored bytes in host byte order.
	AppendNE(dst []byte) []byte

	withWide(v uint128.Uint128) D
	withBytes(b []byte, reverse bool) D
}

var _ = Max[U24]

// Size returns the number of bytes in the representation.
func (u Uint[B, C, A]) Size() int { return len(u.b) }

// Bits returns the logical bit width, 8*Size().
func (u Uint[B, C, A]) Bits() int { return 8 * len(u.b) }

// CarrierSize returns the size in bytes of the native carrier.
func (u Uint[B, C, A]) CarrierSize() int {
	var a A
	return a.Size()
}

// MaxValue returns the largest representable value in carrier form.
func (u Uint[B, C, A]) MaxValue() C {
	return carrier.Mask[C, A](uint(u.Bits()))
}

// IsZero reports whether u is zero.
func (u Uint[B, C, A]) IsZero() bool {
	var zero B
	return u.b == zero
}

// Max returns the largest value of width D.
func Max[D Packed[D]]() D {
	var d D
	return d.withWide(uint128.Max)
}

// Min returns the smallest value of width D, which is zero.
func Min[D Packed[D]]() D {
	var d D
	return d
}

// pad returns the number of carrier bits above the logical width.
func (u Uint[B, C, A]) pad() uint {
	var a A
	return a.Bits() - uint(u.Bits())
}
