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
	"cmp"
	"encoding/binary"
	"math"
	"math/bits"

	"lukechampine.com/uint128"
)

// W32 is the uint32 domain.
type W32 struct{}

var _ Arith[uint32] = W32{}

func (W32) Bits() uint                      { return 32 }
func (W32) Size() int                       { return 4 }
func (W32) Zero() uint32                    { return 0 }
func (W32) Ones() uint32                    { return math.MaxUint32 }
func (W32) FromUint64(v uint64) uint32      { return uint32(v) }
func (W32) Wide(v uint32) uint128.Uint128   { return uint128.From64(uint64(v)) }
func (W32) Narrow(v uint128.Uint128) uint32 { return uint32(v.Lo) }
func (W32) Add(a, b uint32) uint32          { return a + b }
func (W32) Sub(a, b uint32) uint32          { return a - b }
func (W32) Mul(a, b uint32) uint32          { return a * b }
func (W32) QuoRem(a, b uint32) (q, r uint32) {
	return a / b, a % b
}
func (W32) And(a, b uint32) uint32      { return a & b }
func (W32) Or(a, b uint32) uint32       { return a | b }
func (W32) Xor(a, b uint32) uint32      { return a ^ b }
func (W32) Not(a uint32) uint32         { return ^a }
func (W32) Lsh(a uint32, n uint) uint32 { return a << n }
func (W32) Rsh(a uint32, n uint) uint32 { return a >> n }
func (W32) Cmp(a, b uint32) int         { return cmp.Compare(a, b) }
func (W32) IsZero(a uint32) bool        { return a == 0 }
func (W32) LeadingZeros(a uint32) int   { return bits.LeadingZeros32(a) }
func (W32) TrailingZeros(a uint32) int  { return bits.TrailingZeros32(a) }
func (W32) OnesCount(a uint32) int      { return bits.OnesCount32(a) }
func (W32) Reverse(a uint32) uint32     { return bits.Reverse32(a) }
func (W32) Load(b []byte) uint32        { return binary.NativeEndian.Uint32(b) }
func (W32) Store(b []byte, v uint32)    { binary.NativeEndian.PutUint32(b, v) }
func (W32) sealed()                     {}

// W64 is the uint64 domain.
type W64 struct{}

var _ Arith[uint64] = W64{}

func (W64) Bits() uint                      { return 64 }
func (W64) Size() int                       { return 8 }
func (W64) Zero() uint64                    { return 0 }
func (W64) Ones() uint64                    { return math.MaxUint64 }
func (W64) FromUint64(v uint64) uint64      { return v }
func (W64) Wide(v uint64) uint128.Uint128   { return uint128.From64(v) }
func (W64) Narrow(v uint128.Uint128) uint64 { return v.Lo }
func (W64) Add(a, b uint64) uint64          { return a + b }
func (W64) Sub(a, b uint64) uint64          { return a - b }
func (W64) Mul(a, b uint64) uint64          { return a * b }
func (W64) QuoRem(a, b uint64) (q, r uint64) {
	return a / b, a % b
}
func (W64) And(a, b uint64) uint64      { return a & b }
func (W64) Or(a, b uint64) uint64       { return a | b }
func (W64) Xor(a, b uint64) uint64      { return a ^ b }
func (W64) Not(a uint64) uint64         { return ^a }
func (W64) Lsh(a uint64, n uint) uint64 { return a << n }
func (W64) Rsh(a uint64, n uint) uint64 { return a >> n }
func (W64) Cmp(a, b uint64) int         { return cmp.Compare(a, b) }
func (W64) IsZero(a uint64) bool        { return a == 0 }
func (W64) LeadingZeros(a uint64) int   { return bits.LeadingZeros64(a) }
func (W64) TrailingZeros(a uint64) int  { return bits.TrailingZeros64(a) }
func (W64) OnesCount(a uint64) int      { return bits.OnesCount64(a) }
func (W64) Reverse(a uint64) uint64     { return bits.Reverse64(a) }
func (W64) Load(b []byte) uint64        { return binary.NativeEndian.Uint64(b) }
func (W64) Store(b []byte, v uint64)    { binary.NativeEndian.PutUint64(b, v) }
func (W64) sealed()                     {}
