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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

func TestSplitScenario48(t *testing.T) {
	v := NewU48(0x112233445566)
	want := []uint16{0x5566, 0x3344, 0x1122}
	if cpu.IsBigEndian {
		want = []uint16{0x1122, 0x3344, 0x5566}
	}
	if diff := cmp.Diff(want, Split[uint16](v)); diff != "" {
		t.Errorf("Split[uint16] mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, v, Join[U48](want))
}

func TestSplitJoin(t *testing.T) {
	v := MustParse[U96]("0x0102030405060708090a0b0c", 0)

	b := Split[uint8](v)
	assert.Equal(t, v.AppendNE(nil), b)
	assert.Equal(t, v, Join[U96](b))

	i32 := Split[int32](v)
	require.Len(t, i32, 3)
	assert.Equal(t, v, Join[U96](i32))
	if !cpu.IsBigEndian {
		assert.Equal(t, int32(0x090a0b0c), i32[0])
	}

	i8 := Split[int8](NewU24(0xFF0080))
	if !cpu.IsBigEndian {
		assert.Equal(t, []int8{-128, 0, -1}, i8)
	}
}

func TestSplitPacked(t *testing.T) {
	v := NewU48(0x112233445566)
	lanes := SplitPacked[U24](v)
	want := []U24{NewU24(0x445566), NewU24(0x112233)}
	if cpu.IsBigEndian {
		want = []U24{NewU24(0x112233), NewU24(0x445566)}
	}
	assert.Equal(t, want, lanes)
	assert.Equal(t, v, JoinPacked[U48](lanes))

	w := Max[U120]().Shr(60)
	fives := SplitPacked[U24](w)
	assert.Len(t, fives, 5)
	assert.Equal(t, w, JoinPacked[U120](fives))

	assert.Len(t, SplitPacked[U40](MustParse[U80]("0xffff0000ffff0000ffff", 0)), 2)
}

func TestLaneSizeMismatch(t *testing.T) {
	tests := map[string]func(){
		"u16 of U24":   func() { Split[uint16](NewU24(1)) },
		"u64 of U120":  func() { Split[uint64](NewU120(Max[U120]().Uint128())) },
		"join short":   func() { Join[U48]([]uint16{1, 2}) },
		"U40 of U48":   func() { SplitPacked[U40](NewU48(1)) },
		"joinpacked":   func() { JoinPacked[U72]([]U24{{}, {}}) },
		"i32 of U112":  func() { Split[int32](Max[U112]()) },
		"join too big": func() { Join[U24]([]uint8{1, 2, 3, 4}) },
		"f64 of U120":  func() { Split[float64](Max[U120]()) },
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, recoverErr(f), ErrLaneSize)
		})
	}
}

func TestFloat16Lanes(t *testing.T) {
	in := []Float16{NewFloat16(1), NewFloat16(-2.5), Float16Inf}
	v := Join[U48](in)
	out := Split[Float16](v)
	require.Len(t, out, 3)
	assert.Equal(t, float32(1), out[0].Float32())
	assert.Equal(t, float32(-2.5), out[1].Float32())
	assert.True(t, out[2].IsInf())
}

func TestFloat32Lanes(t *testing.T) {
	in := []float32{1.5, -2, float32(math.Inf(1))}
	v := Join[U96](in)
	out := Split[float32](v)
	assert.Equal(t, in, out)

	bits := Split[uint32](v)
	require.Len(t, bits, 3)
	for i, f := range in {
		assert.Equal(t, math.Float32bits(f), bits[i])
	}

	nan := Join[U96]([]float32{float32(math.NaN()), 0, 0})
	assert.True(t, math.IsNaN(float64(Split[float32](nan)[0])))
}

func TestLaneErrorNamesOperation(t *testing.T) {
	var ae *ArithmeticError
	require.True(t, errors.As(recoverErr(func() { Split[uint16](NewU24(1)) }), &ae))
	assert.Equal(t, "split into 16-bit lanes", ae.Op)
	assert.Equal(t, 24, ae.Bits)

	require.True(t, errors.As(recoverErr(func() { Join[U48]([]uint16{1, 2}) }), &ae))
	assert.Equal(t, "join from 16-bit lanes", ae.Op)
	assert.Equal(t, 48, ae.Bits)

	require.True(t, errors.As(recoverErr(func() { JoinPacked[U72]([]U24{{}, {}}) }), &ae))
	assert.Equal(t, "join from 24-bit lanes", ae.Op)
	assert.EqualError(t, ae, "uintx: U72 join from 24-bit lanes: "+ErrLaneSize.Error())
}
