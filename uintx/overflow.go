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

// Every carrier is at least 8 bits wider than the width it serves, so the
// exact sum of two in-range operands never wraps the carrier. Products and
// differences do wrap, but only at the carrier width, which keeps the low
// 8*N bits exact.

// OverflowingAdd returns u+v reduced modulo 2^Bits() and whether the exact
// sum exceeded MaxValue.
func (u Uint[B, C, A]) OverflowingAdd(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	return u.OverflowingAddNative(v.ToNative())
}

// OverflowingAddNative is OverflowingAdd with a carrier operand. Any
// n > MaxValue overflows.
func (u Uint[B, C, A]) OverflowingAddNative(n C) (Uint[B, C, A], bool) {
	var a A
	max := u.MaxValue()
	s := a.Add(u.ToNative(), n)
	return u.pack(s), a.Cmp(n, max) > 0 || a.Cmp(s, max) > 0
}

// OverflowingSub returns u-v reduced modulo 2^Bits() and whether v > u.
func (u Uint[B, C, A]) OverflowingSub(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	return u.OverflowingSubNative(v.ToNative())
}

// OverflowingSubNative returns u-n reduced modulo 2^Bits() and whether n > u.
func (u Uint[B, C, A]) OverflowingSubNative(n C) (Uint[B, C, A], bool) {
	var a A
	x := u.ToNative()
	return u.pack(a.Sub(x, n)), a.Cmp(x, n) < 0
}

// OverflowingMul returns u*v reduced modulo 2^Bits() and whether the exact
// product exceeded MaxValue.
func (u Uint[B, C, A]) OverflowingMul(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	return u.OverflowingMulNative(v.ToNative())
}

// OverflowingMulNative is OverflowingMul with a carrier operand.
func (u Uint[B, C, A]) OverflowingMulNative(n C) (Uint[B, C, A], bool) {
	var a A
	x := u.ToNative()
	over := false
	if !a.IsZero(n) {
		// max/n is zero for n > MaxValue, so only u == 0 stays in range.
		limit, _ := a.QuoRem(u.MaxValue(), n)
		over = a.Cmp(x, limit) > 0
	}
	return u.pack(a.Mul(x, n)), over
}

// OverflowingNeg returns -u reduced modulo 2^Bits() and whether u was
// non-zero.
func (u Uint[B, C, A]) OverflowingNeg() (Uint[B, C, A], bool) {
	var a A
	return u.pack(a.Sub(a.Zero(), u.ToNative())), !u.IsZero()
}

// OverflowingShl returns u<<(n mod Bits()) and whether n >= Bits().
func (u Uint[B, C, A]) OverflowingShl(n uint) (Uint[B, C, A], bool) {
	var a A
	bits := uint(u.Bits())
	return u.pack(a.Lsh(u.ToNative(), n%bits)), n >= bits
}

// OverflowingShr returns u>>(n mod Bits()) and whether n >= Bits().
func (u Uint[B, C, A]) OverflowingShr(n uint) (Uint[B, C, A], bool) {
	var a A
	bits := uint(u.Bits())
	return u.pack(a.Rsh(u.ToNative(), n%bits)), n >= bits
}

// CheckedAdd returns u+v, or false if the sum exceeds MaxValue.
func (u Uint[B, C, A]) CheckedAdd(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	r, over := u.OverflowingAdd(v)
	return checked(r, over)
}

// CheckedSub returns u-v, or false if v > u.
func (u Uint[B, C, A]) CheckedSub(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	r, over := u.OverflowingSub(v)
	return checked(r, over)
}

// CheckedMul returns u*v, or false if the product exceeds MaxValue.
func (u Uint[B, C, A]) CheckedMul(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	r, over := u.OverflowingMul(v)
	return checked(r, over)
}

// CheckedAddNative returns u+n, or false if the sum exceeds MaxValue.
func (u Uint[B, C, A]) CheckedAddNative(n C) (Uint[B, C, A], bool) {
	r, over := u.OverflowingAddNative(n)
	return checked(r, over)
}

// CheckedSubNative returns u-n, or false if n > u.
func (u Uint[B, C, A]) CheckedSubNative(n C) (Uint[B, C, A], bool) {
	r, over := u.OverflowingSubNative(n)
	return checked(r, over)
}

// CheckedMulNative returns u*n, or false if the product exceeds MaxValue.
func (u Uint[B, C, A]) CheckedMulNative(n C) (Uint[B, C, A], bool) {
	r, over := u.OverflowingMulNative(n)
	return checked(r, over)
}

// CheckedNeg returns -u, which is only defined for zero.
func (u Uint[B, C, A]) CheckedNeg() (Uint[B, C, A], bool) {
	r, over := u.OverflowingNeg()
	return checked(r, over)
}

// CheckedShl returns u<<n, or false if n >= Bits().
func (u Uint[B, C, A]) CheckedShl(n uint) (Uint[B, C, A], bool) {
	r, over := u.OverflowingShl(n)
	return checked(r, over)
}

// CheckedShr returns u>>n, or false if n >= Bits().
func (u Uint[B, C, A]) CheckedShr(n uint) (Uint[B, C, A], bool) {
	r, over := u.OverflowingShr(n)
	return checked(r, over)
}

// CheckedDiv returns u/v, or false if v is zero.
func (u Uint[B, C, A]) CheckedDiv(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	if v.IsZero() {
		return Uint[B, C, A]{}, false
	}
	return u.Div(v), true
}

// CheckedRem returns u%v, or false if v is zero.
func (u Uint[B, C, A]) CheckedRem(v Uint[B, C, A]) (Uint[B, C, A], bool) {
	if v.IsZero() {
		return Uint[B, C, A]{}, false
	}
	return u.Rem(v), true
}

// CheckedDivNative returns u/n, or false if n is zero.
func (u Uint[B, C, A]) CheckedDivNative(n C) (Uint[B, C, A], bool) {
	var a A
	if a.IsZero(n) {
		return Uint[B, C, A]{}, false
	}
	return u.DivNative(n), true
}

// CheckedRemNative returns u%n, or false if n is zero.
func (u Uint[B, C, A]) CheckedRemNative(n C) (Uint[B, C, A], bool) {
	var a A
	if a.IsZero(n) {
		return Uint[B, C, A]{}, false
	}
	return u.RemNative(n), true
}

// WrappingAdd returns u+v modulo 2^Bits().
func (u Uint[B, C, A]) WrappingAdd(v Uint[B, C, A]) Uint[B, C, A] {
	r, _ := u.OverflowingAdd(v)
	return r
}

// WrappingSub returns u-v modulo 2^Bits().
func (u Uint[B, C, A]) WrappingSub(v Uint[B, C, A]) Uint[B, C, A] {
	r, _ := u.OverflowingSub(v)
	return r
}

// WrappingMul returns u*v modulo 2^Bits().
func (u Uint[B, C, A]) WrappingMul(v Uint[B, C, A]) Uint[B, C, A] {
	r, _ := u.OverflowingMul(v)
	return r
}

// WrappingAddNative returns u+n modulo 2^Bits().
func (u Uint[B, C, A]) WrappingAddNative(n C) Uint[B, C, A] {
	r, _ := u.OverflowingAddNative(n)
	return r
}

// WrappingSubNative returns u-n modulo 2^Bits().
func (u Uint[B, C, A]) WrappingSubNative(n C) Uint[B, C, A] {
	r, _ := u.OverflowingSubNative(n)
	return r
}

// WrappingMulNative returns u*n modulo 2^Bits().
func (u Uint[B, C, A]) WrappingMulNative(n C) Uint[B, C, A] {
	r, _ := u.OverflowingMulNative(n)
	return r
}

// WrappingNeg returns -u modulo 2^Bits().
func (u Uint[B, C, A]) WrappingNeg() Uint[B, C, A] {
	r, _ := u.OverflowingNeg()
	return r
}

// WrappingShl returns u<<(n mod Bits()).
func (u Uint[B, C, A]) WrappingShl(n uint) Uint[B, C, A] {
	r, _ := u.OverflowingShl(n)
	return r
}

// WrappingShr returns u>>(n mod Bits()).
func (u Uint[B, C, A]) WrappingShr(n uint) Uint[B, C, A] {
	r, _ := u.OverflowingShr(n)
	return r
}

func checked[U any](r U, over bool) (U, bool) {
	if over {
		var zero U
		return zero, false
	}
	return r, true
}
