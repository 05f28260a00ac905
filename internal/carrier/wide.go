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

package carrier

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
	"lukechampine.com/uint128"
)

// W128 is the 128-bit domain. Go has no native 128-bit integer, so the
// carrier is uint128.Uint128, a pair of uint64 halves.
type W128 struct{}

var _ Arith[uint128.Uint128] = W128{}

func (W128) Bits() uint            { return 128 }
func (W128) Size() int             { return 16 }
func (W128) Zero() uint128.Uint128 { return uint128.Zero }
func (W128) Ones() uint128.Uint128 { return uint128.Max }
func (W128) FromUint64(v uint64) uint128.Uint128 {
	return uint128.From64(v)
}
func (W128) Wide(v uint128.Uint128) uint128.Uint128   { return v }
func (W128) Narrow(v uint128.Uint128) uint128.Uint128 { return v }

func (W128) Add(a, b uint128.Uint128) uint128.Uint128 { return a.AddWrap(b) }
func (W128) Sub(a, b uint128.Uint128) uint128.Uint128 { return a.SubWrap(b) }
func (W128) Mul(a, b uint128.Uint128) uint128.Uint128 { return a.MulWrap(b) }

func (W128) QuoRem(a, b uint128.Uint128) (q, r uint128.Uint128) {
	return a.QuoRem(b)
}

func (W128) And(a, b uint128.Uint128) uint128.Uint128 { return a.And(b) }
func (W128) Or(a, b uint128.Uint128) uint128.Uint128  { return a.Or(b) }
func (W128) Xor(a, b uint128.Uint128) uint128.Uint128 { return a.Xor(b) }

func (W128) Not(a uint128.Uint128) uint128.Uint128 {
	return uint128.New(^a.Lo, ^a.Hi)
}

func (W128) Lsh(a uint128.Uint128, n uint) uint128.Uint128 {
	if n >= 128 {
		return uint128.Zero
	}
	return a.Lsh(n)
}

func (W128) Rsh(a uint128.Uint128, n uint) uint128.Uint128 {
	if n >= 128 {
		return uint128.Zero
	}
	return a.Rsh(n)
}

func (W128) Cmp(a, b uint128.Uint128) int  { return a.Cmp(b) }
func (W128) IsZero(a uint128.Uint128) bool { return a.IsZero() }

func (W128) LeadingZeros(a uint128.Uint128) int {
	if a.Hi != 0 {
		return bits.LeadingZeros64(a.Hi)
	}
	return 64 + bits.LeadingZeros64(a.Lo)
}

func (W128) TrailingZeros(a uint128.Uint128) int {
	if a.Lo != 0 {
		return bits.TrailingZeros64(a.Lo)
	}
	return 64 + bits.TrailingZeros64(a.Hi)
}

func (W128) OnesCount(a uint128.Uint128) int {
	return bits.OnesCount64(a.Lo) + bits.OnesCount64(a.Hi)
}

func (W128) Reverse(a uint128.Uint128) uint128.Uint128 {
	return uint128.New(bits.Reverse64(a.Hi), bits.Reverse64(a.Lo))
}

// Load reads 16 bytes laid out the way a native 128-bit integer would be:
// low half first on little-endian hosts, high half first on big-endian ones.
func (W128) Load(b []byte) uint128.Uint128 {
	_ = b[15]
	first := binary.NativeEndian.Uint64(b[:8])
	second := binary.NativeEndian.Uint64(b[8:16])
	if cpu.IsBigEndian {
		return uint128.New(second, first)
	}
	return uint128.New(first, second)
}

func (W128) Store(b []byte, v uint128.Uint128) {
	_ = b[15]
	if cpu.IsBigEndian {
		binary.NativeEndian.PutUint64(b[:8], v.Hi)
		binary.NativeEndian.PutUint64(b[8:16], v.Lo)
		return
	}
	binary.NativeEndian.PutUint64(b[:8], v.Lo)
	binary.NativeEndian.PutUint64(b[8:16], v.Hi)
}

func (W128) sealed() {}
