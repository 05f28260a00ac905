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

import "math"

// Float16 is an IEEE 754 binary16 value held in its bit pattern. It exists
// so the bytes of a packed integer can be viewed as half-precision lanes
// with Split and built from them with Join.
//
//	S | EEEEE | MMMMMMMMMM
type Float16 uint16

// Float16 special values.
const (
	Float16Zero   Float16 = 0x0000
	Float16One    Float16 = 0x3C00
	Float16Max    Float16 = 0x7BFF // 65504
	Float16Inf    Float16 = 0x7C00
	Float16NegInf Float16 = 0xFC00
	Float16NaN    Float16 = 0x7E00
)

// NewFloat16 converts f to the nearest Float16, rounding ties to even.
// Values too large become infinities; NaN stays NaN.
func NewFloat16(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int(b>>23) & 0xFF
	mant := b & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Float16(sign) | Float16NaN
		}
		return Float16(sign) | Float16Inf
	}
	e := exp - 127 + 15
	switch {
	case e >= 31:
		return Float16(sign) | Float16Inf
	case e <= 0:
		if e < -10 {
			return Float16(sign)
		}
		// Subnormal: the half-precision unit is 2^-24.
		return Float16(sign | uint16(roundShift(mant|0x800000, uint(14-e))))
	}
	// A carry out of the mantissa bumps the exponent, and from the largest
	// exponent it lands exactly on infinity.
	v := uint32(e)<<10 | mant>>13
	if rem := mant & 0x1FFF; rem > 0x1000 || (rem == 0x1000 && v&1 == 1) {
		v++
	}
	return Float16(sign | uint16(v))
}

func roundShift(m uint32, s uint) uint32 {
	q := m >> s
	rem := m & (1<<s - 1)
	half := uint32(1) << (s - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// Float32 returns h as a float32. The conversion is exact.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF
	switch exp {
	case 0:
		f := float32(mant) * 0x1p-24
		if sign != 0 {
			f = -f
		}
		return f
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool { return h&0x7C00 == 0x7C00 && h&0x3FF != 0 }

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool { return h&0x7FFF == 0x7C00 }
