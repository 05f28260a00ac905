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
	"encoding/binary"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Conversions between widths and to or from Go integers all go through the
// carrier: the source is unpacked, cast, and packed into the target. As with
// native casts, widening is lossless and narrowing keeps the low bits; the
// Checked variants report whether anything was lost.

// Uint128 returns u zero-extended to 128 bits.
func (u Uint[B, C, A]) Uint128() uint128.Uint128 {
	var a A
	return a.Wide(u.ToNative())
}

// Uint64 returns the low 64 bits of u.
func (u Uint[B, C, A]) Uint64() uint64 { return u.Uint128().Lo }

// Big returns u as a new big.Int.
func (u Uint[B, C, A]) Big() *big.Int { return u.Uint128().Big() }

func (u Uint[B, C, A]) withWide(v uint128.Uint128) Uint[B, C, A] {
	var a A
	return u.pack(a.Narrow(v))
}

// Convert returns s as width D, keeping the low D.Bits() bits.
func Convert[D Packed[D], S Packed[S]](s S) D {
	var d D
	return d.withWide(s.Uint128())
}

// ConvertChecked returns s as width D and whether the value was preserved.
func ConvertChecked[D Packed[D], S Packed[S]](s S) (D, bool) {
	d := Convert[D](s)
	return d, d.Uint128() == s.Uint128()
}

// FromUint128 returns the low D.Bits() bits of v.
func FromUint128[D Packed[D]](v uint128.Uint128) D {
	var d D
	return d.withWide(v)
}

// From converts a Go integer to width D the way a native cast would:
// negative values are sign-extended, then the low D.Bits() bits are kept.
func From[D Packed[D], T constraints.Integer](v T) D {
	var d D
	return d.withWide(widen(v))
}

// FromChecked converts a Go integer to width D, or returns false if v is
// negative or larger than the width's maximum.
func FromChecked[D Packed[D], T constraints.Integer](v T) (D, bool) {
	var d D
	if v < 0 {
		return d, false
	}
	w := widen(v)
	d = d.withWide(w)
	return d, d.Uint128() == w
}

// To converts s to the Go integer type T the way a native cast would,
// keeping the low bits.
func To[T constraints.Integer, S Packed[S]](s S) T {
	return T(s.Uint128().Lo)
}

// ToChecked converts s to T, or returns false if the value does not fit.
func ToChecked[T constraints.Integer, S Packed[S]](s S) (T, bool) {
	w := s.Uint128()
	t := T(w.Lo)
	return t, widen(t) == w
}

// FromBig converts a non-negative big.Int to width D. It returns false if b
// is negative or does not fit.
func FromBig[D Packed[D]](b *big.Int) (D, bool) {
	var d D
	if b.Sign() < 0 || b.BitLen() > d.Bits() {
		return d, false
	}
	var buf [16]byte
	b.FillBytes(buf[:])
	w := uint128.New(binary.BigEndian.Uint64(buf[8:]), binary.BigEndian.Uint64(buf[:8]))
	return d.withWide(w), true
}

// widen sign-extends v to 128 bits.
func widen[T constraints.Integer](v T) uint128.Uint128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return uint128.New(uint64(v), hi)
}
