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

// Default operators. Add, Sub and Mul panic with an *ArithmeticError wrapping
// ErrOverflow when the exact result does not fit the width; use the Checked,
// Wrapping, Saturating or Overflowing families to pick another policy.

// Add returns u+v. It panics if the sum exceeds MaxValue.
func (u Uint[B, C, A]) Add(v Uint[B, C, A]) Uint[B, C, A] { return u.AddNative(v.ToNative()) }

// AddNative returns u+n for a carrier value n. It panics if the sum exceeds
// MaxValue, which includes every n > MaxValue.
func (u Uint[B, C, A]) AddNative(n C) Uint[B, C, A] {
	r, over := u.OverflowingAddNative(n)
	if over {
		arithPanic("add", u.Bits(), ErrOverflow)
	}
	return r
}

// Sub returns u-v. It panics if v > u.
func (u Uint[B, C, A]) Sub(v Uint[B, C, A]) Uint[B, C, A] { return u.SubNative(v.ToNative()) }

// SubNative returns u-n. It panics if n > u.
func (u Uint[B, C, A]) SubNative(n C) Uint[B, C, A] {
	r, over := u.OverflowingSubNative(n)
	if over {
		arithPanic("sub", u.Bits(), ErrOverflow)
	}
	return r
}

// Mul returns u*v. It panics if the product exceeds MaxValue.
func (u Uint[B, C, A]) Mul(v Uint[B, C, A]) Uint[B, C, A] { return u.MulNative(v.ToNative()) }

// MulNative returns u*n. It panics if the product exceeds MaxValue.
func (u Uint[B, C, A]) MulNative(n C) Uint[B, C, A] {
	r, over := u.OverflowingMulNative(n)
	if over {
		arithPanic("mul", u.Bits(), ErrOverflow)
	}
	return r
}

// Div returns u/v rounded toward zero. It panics if v is zero.
func (u Uint[B, C, A]) Div(v Uint[B, C, A]) Uint[B, C, A] { return u.DivNative(v.ToNative()) }

// DivNative returns u/n rounded toward zero. n may exceed MaxValue, in which
// case the quotient is zero. It panics if n is zero.
func (u Uint[B, C, A]) DivNative(n C) Uint[B, C, A] {
	var a A
	if a.IsZero(n) {
		arithPanic("div", u.Bits(), ErrDivideByZero)
	}
	q, _ := a.QuoRem(u.ToNative(), n)
	return u.pack(q)
}

// Rem returns u%v. It panics if v is zero.
func (u Uint[B, C, A]) Rem(v Uint[B, C, A]) Uint[B, C, A] { return u.RemNative(v.ToNative()) }

// RemNative returns u%n. It panics if n is zero.
func (u Uint[B, C, A]) RemNative(n C) Uint[B, C, A] {
	var a A
	if a.IsZero(n) {
		arithPanic("rem", u.Bits(), ErrDivideByZero)
	}
	_, r := a.QuoRem(u.ToNative(), n)
	return u.pack(r)
}

// And returns u&v.
func (u Uint[B, C, A]) And(v Uint[B, C, A]) Uint[B, C, A] { return u.AndNative(v.ToNative()) }

// AndNative returns u&n.
func (u Uint[B, C, A]) AndNative(n C) Uint[B, C, A] {
	var a A
	return u.pack(a.And(u.ToNative(), n))
}

// Or returns u|v.
func (u Uint[B, C, A]) Or(v Uint[B, C, A]) Uint[B, C, A] { return u.OrNative(v.ToNative()) }

// OrNative returns u|n truncated to the width. Bits of n above the width
// are discarded.
func (u Uint[B, C, A]) OrNative(n C) Uint[B, C, A] {
	var a A
	return u.pack(a.Or(u.ToNative(), n))
}

// Xor returns u^v.
func (u Uint[B, C, A]) Xor(v Uint[B, C, A]) Uint[B, C, A] { return u.XorNative(v.ToNative()) }

// XorNative returns u^n truncated to the width.
func (u Uint[B, C, A]) XorNative(n C) Uint[B, C, A] {
	var a A
	return u.pack(a.Xor(u.ToNative(), n))
}

// AndNot returns u&^v.
func (u Uint[B, C, A]) AndNot(v Uint[B, C, A]) Uint[B, C, A] {
	var a A
	return u.pack(a.And(u.ToNative(), a.Not(v.ToNative())))
}

// Not returns the bitwise complement of u within the width.
func (u Uint[B, C, A]) Not() Uint[B, C, A] {
	var a A
	return u.pack(a.Not(u.ToNative()))
}

// Shl returns u<<n. Bits shifted past the width are lost. It panics if
// n >= Bits().
func (u Uint[B, C, A]) Shl(n uint) Uint[B, C, A] {
	if n >= uint(u.Bits()) {
		arithPanic("shl", u.Bits(), ErrShiftOverflow)
	}
	var a A
	return u.pack(a.Lsh(u.ToNative(), n))
}

// Shr returns u>>n. It panics if n >= Bits().
func (u Uint[B, C, A]) Shr(n uint) Uint[B, C, A] {
	if n >= uint(u.Bits()) {
		arithPanic("shr", u.Bits(), ErrShiftOverflow)
	}
	var a A
	return u.pack(a.Rsh(u.ToNative(), n))
}

// Equal reports whether u and v hold the same value. It is equivalent to
// u == v.
func (u Uint[B, C, A]) Equal(v Uint[B, C, A]) bool { return u == v }

// Cmp compares u and v numerically and returns -1, 0 or +1.
func (u Uint[B, C, A]) Cmp(v Uint[B, C, A]) int {
	var a A
	return a.Cmp(u.ToNative(), v.ToNative())
}

// Less reports whether u < v.
func (u Uint[B, C, A]) Less(v Uint[B, C, A]) bool { return u.Cmp(v) < 0 }

// CmpNative compares u with a carrier value n, which may exceed MaxValue.
func (u Uint[B, C, A]) CmpNative(n C) int {
	var a A
	return a.Cmp(u.ToNative(), n)
}

// EqualNative reports whether u equals the carrier value n.
func (u Uint[B, C, A]) EqualNative(n C) bool { return u.CmpNative(n) == 0 }
