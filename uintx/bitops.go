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

// LeadingZeros returns the number of leading zero bits within the width.
// The result for 0 is Bits().
func (u Uint[B, C, A]) LeadingZeros() int {
	var a A
	return a.LeadingZeros(u.ToNative()) - int(u.pad())
}

// TrailingZeros returns the number of trailing zero bits. The result for 0
// is Bits().
func (u Uint[B, C, A]) TrailingZeros() int {
	if u.IsZero() {
		return u.Bits()
	}
	var a A
	return a.TrailingZeros(u.ToNative())
}

// LeadingOnes returns the number of leading one bits within the width.
func (u Uint[B, C, A]) LeadingOnes() int { return u.Not().LeadingZeros() }

// TrailingOnes returns the number of trailing one bits.
func (u Uint[B, C, A]) TrailingOnes() int { return u.Not().TrailingZeros() }

// OnesCount returns the number of one bits.
func (u Uint[B, C, A]) OnesCount() int {
	var a A
	return a.OnesCount(u.ToNative())
}

// ZerosCount returns the number of zero bits within the width.
func (u Uint[B, C, A]) ZerosCount() int { return u.Bits() - u.OnesCount() }

// Len returns the minimum number of bits required to represent u; the
// result is 0 for u == 0.
func (u Uint[B, C, A]) Len() int { return u.Bits() - u.LeadingZeros() }

// IsPowerOfTwo reports whether exactly one bit of u is set.
func (u Uint[B, C, A]) IsPowerOfTwo() bool { return u.OnesCount() == 1 }

// RotateLeft returns u rotated left by (k mod Bits()) bits within the width.
// To rotate right by k bits, call RotateLeft(-k).
func (u Uint[B, C, A]) RotateLeft(k int) Uint[B, C, A] {
	bits := u.Bits()
	s := uint(((k % bits) + bits) % bits)
	if s == 0 {
		return u
	}
	var a A
	x := u.ToNative()
	return u.pack(a.Or(a.Lsh(x, s), a.Rsh(x, uint(bits)-s)))
}

// RotateRight returns u rotated right by (k mod Bits()) bits within the
// width.
func (u Uint[B, C, A]) RotateRight(k int) Uint[B, C, A] {
	bits := u.Bits()
	return u.RotateLeft(bits - ((k%bits)+bits)%bits)
}

// ReverseBits returns u with the order of its Bits() bits reversed.
func (u Uint[B, C, A]) ReverseBits() Uint[B, C, A] {
	var a A
	return u.pack(a.Rsh(a.Reverse(u.ToNative()), u.pad()))
}
