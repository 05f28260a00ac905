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
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

func TestConvertWidths(t *testing.T) {
	v := NewU24(0xABCDEF)

	w := Convert[U120](v)
	assert.Equal(t, "11259375", w.String())
	back, ok := ConvertChecked[U24](w)
	assert.True(t, ok)
	assert.Equal(t, v, back)

	wide := NewU56(0x11_2233_4455_6677)
	n, ok := ConvertChecked[U24](wide)
	assert.False(t, ok, "high bits dropped")
	assert.Equal(t, NewU24(0x556677), n)
	assert.Equal(t, NewU56(0x556677), Convert[U56](n), "narrow-then-widen loses the high bits")

	clean := NewU56(0x556677)
	n, ok = ConvertChecked[U24](clean)
	assert.True(t, ok)
	assert.Equal(t, clean, Convert[U56](n))

	x := MustParse[U104]("0x0102030405060708090a0b0c0d", 0)
	assert.Equal(t, MustParse[U72]("0x05060708090a0b0c0d", 0), Convert[U72](x))
	assert.Equal(t, NewU40(0x090a0b0c0d), Convert[U40](x))
}

func TestFromNative(t *testing.T) {
	assert.Equal(t, Max[U24](), From[U24](-1), "negative values sign-extend")
	assert.Equal(t, Max[U120](), From[U120](int8(-1)))
	assert.Equal(t, NewU40(0xFF_FFFF_FF80), From[U40](int8(-128)))
	assert.Equal(t, NewU24(0x345678), From[U24](uint64(0x12345678)))
	assert.Equal(t, NewU72(uint128.From64(math.MaxUint64)), From[U72](uint64(math.MaxUint64)))

	_, ok := FromChecked[U24](-1)
	assert.False(t, ok)
	_, ok = FromChecked[U24](1 << 24)
	assert.False(t, ok)
	v, ok := FromChecked[U24](uint16(0xBEEF))
	assert.True(t, ok)
	assert.Equal(t, NewU24(0xBEEF), v)
	_, ok = FromChecked[U72](int64(math.MaxInt64))
	assert.True(t, ok)
}

func TestToNative(t *testing.T) {
	v := NewU48(0x8000_0000_00FF)
	assert.Equal(t, uint8(0xFF), To[uint8](v))
	assert.Equal(t, int8(-1), To[int8](v))
	assert.Equal(t, int64(0x8000_0000_00FF), To[int64](v))
	assert.Equal(t, uint32(0xFF), To[uint32](v))

	_, ok := ToChecked[uint32](v)
	assert.False(t, ok)
	_, ok = ToChecked[int8](NewU24(0x80))
	assert.False(t, ok, "0x80 is not representable as int8")
	i, ok := ToChecked[int8](NewU24(0x7F))
	assert.True(t, ok)
	assert.Equal(t, int8(0x7F), i)
	u, ok := ToChecked[uint64](Max[U56]())
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<56-1, u)
	_, ok = ToChecked[uint64](Max[U72]())
	assert.False(t, ok)

	assert.Equal(t, uint64(0x0102030405060708), MustParse[U80]("0x99990102030405060708", 0).Uint64())
}

func TestBig(t *testing.T) {
	b, _ := new(big.Int).SetString("ffeeddccbbaa99887766554433", 16)
	v, ok := FromBig[U104](b)
	assert.True(t, ok)
	assert.Equal(t, 0, b.Cmp(v.Big()))

	_, ok = FromBig[U96](b)
	assert.False(t, ok)
	_, ok = FromBig[U24](big.NewInt(-1))
	assert.False(t, ok)

	assert.Equal(t, NewU88(uint128.New(1, 2)), FromUint128[U88](uint128.New(1, 2)))
	assert.Equal(t, uint128.New(1, 2), NewU88(uint128.New(1, 2)).Uint128())
}
