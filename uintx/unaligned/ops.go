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

package unaligned

import (
	"github.com/ajroetker/go-uintx/internal/carrier"
	"github.com/ajroetker/go-uintx/uintx"
)

// Each operation comes in four shapes:
//
//	Op(p, q)             carrier result, packed right operand
//	OpNative(p, n)       carrier result, carrier right operand
//	OpPacked(p, q)       packed result, packed right operand
//	OpNativePacked(p, n) packed result, carrier right operand
//
// Packed results keep the low Bits() bits of the carrier result.

func quo[C carrier.Carrier, A carrier.Arith[C]](a A, x, y C) C {
	q, _ := a.QuoRem(x, y)
	return q
}

func rem[C carrier.Carrier, A carrier.Arith[C]](a A, x, y C) C {
	_, r := a.QuoRem(x, y)
	return r
}

// Add returns the sum of *p and *q in carrier form.
// It wraps at the carrier width.
func Add[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := LoadClamped(p), LoadClamped(q)
	return a.Add(x, y)
}

// AddNative returns the sum of *p and the carrier value n.
func AddNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.Add(x, y)
}

// AddPacked is like Add but returns a packed value.
func AddPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Add(p, q))
}

// AddNativePacked is like AddNative but returns a packed value.
func AddNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](AddNative(p, n))
}

// Sub returns the difference of *p and *q in carrier form.
// It wraps at the carrier width.
func Sub[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := LoadClamped(p), LoadClamped(q)
	return a.Sub(x, y)
}

// SubNative returns the difference of *p and the carrier value n.
func SubNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.Sub(x, y)
}

// SubPacked is like Sub but returns a packed value.
func SubPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Sub(p, q))
}

// SubNativePacked is like SubNative but returns a packed value.
func SubNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](SubNative(p, n))
}

// Mul returns the product of *p and *q in carrier form.
// It wraps at the carrier width.
func Mul[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := LoadClamped(p), LoadClamped(q)
	return a.Mul(x, y)
}

// MulNative returns the product of *p and the carrier value n.
func MulNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.Mul(x, y)
}

// MulPacked is like Mul but returns a packed value.
func MulPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Mul(p, q))
}

// MulNativePacked is like MulNative but returns a packed value.
func MulNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](MulNative(p, n))
}

// Div returns the quotient of *p and *q in carrier form.
// It panics if the divisor is zero.
func Div[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := LoadClamped(p), LoadClamped(q)
	return quo(a, x, y)
}

// DivNative returns the quotient of *p and the carrier value n.
func DivNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return quo(a, x, y)
}

// DivPacked is like Div but returns a packed value.
func DivPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Div(p, q))
}

// DivNativePacked is like DivNative but returns a packed value.
func DivNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](DivNative(p, n))
}

// Rem returns the remainder of *p and *q in carrier form.
// It panics if the divisor is zero.
func Rem[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := LoadClamped(p), LoadClamped(q)
	return rem(a, x, y)
}

// RemNative returns the remainder of *p and the carrier value n.
func RemNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return rem(a, x, y)
}

// RemPacked is like Rem but returns a packed value.
func RemPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Rem(p, q))
}

// RemNativePacked is like RemNative but returns a packed value.
func RemNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](RemNative(p, n))
}

// And returns the bitwise AND of *p and *q in carrier form.
func And[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := Load(p), Load(q)
	return a.And(a.And(x, y), p.MaxValue())
}

// AndNative returns the bitwise AND of *p and the carrier value n.
func AndNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.And(x, y)
}

// AndPacked is like And but returns a packed value.
func AndPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](And(p, q))
}

// AndNativePacked is like AndNative but returns a packed value.
func AndNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](AndNative(p, n))
}

// Or returns the bitwise OR of *p and *q in carrier form.
func Or[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := Load(p), Load(q)
	return a.And(a.Or(x, y), p.MaxValue())
}

// OrNative returns the bitwise OR of *p and the carrier value n.
// Bits of n above the width pass through unchanged.
func OrNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.Or(x, y)
}

// OrPacked is like Or but returns a packed value.
func OrPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Or(p, q))
}

// OrNativePacked is like OrNative but returns a packed value.
func OrNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](OrNative(p, n))
}

// Xor returns the bitwise XOR of *p and *q in carrier form.
func Xor[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) C {
	var a A
	x, y := Load(p), Load(q)
	return a.And(a.Xor(x, y), p.MaxValue())
}

// XorNative returns the bitwise XOR of *p and the carrier value n.
// Bits of n above the width pass through unchanged.
func XorNative[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) C {
	var a A
	x, y := LoadClamped(p), n
	return a.Xor(x, y)
}

// XorPacked is like Xor but returns a packed value.
func XorPacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p, q *uintx.Uint[B, C, A]) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](Xor(p, q))
}

// XorNativePacked is like XorNative but returns a packed value.
func XorNativePacked[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A], n C) uintx.Uint[B, C, A] {
	return uintx.Pack[B, C, A](XorNative(p, n))
}
