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
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-uintx/internal/carrier"
	"github.com/ajroetker/go-uintx/uintx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

type widthSuite interface {
	loads(t *testing.T)
	fused(t *testing.T)
}

type suite[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]] struct{}

var suites = []struct {
	name string
	s    widthSuite
}{
	{"U24", suite[[3]byte, uint32, carrier.W32]{}},
	{"U40", suite[[5]byte, uint64, carrier.W64]{}},
	{"U48", suite[[6]byte, uint64, carrier.W64]{}},
	{"U56", suite[[7]byte, uint64, carrier.W64]{}},
	{"U72", suite[[9]byte, uint128.Uint128, carrier.W128]{}},
	{"U80", suite[[10]byte, uint128.Uint128, carrier.W128]{}},
	{"U88", suite[[11]byte, uint128.Uint128, carrier.W128]{}},
	{"U96", suite[[12]byte, uint128.Uint128, carrier.W128]{}},
	{"U104", suite[[13]byte, uint128.Uint128, carrier.W128]{}},
	{"U112", suite[[14]byte, uint128.Uint128, carrier.W128]{}},
	{"U120", suite[[15]byte, uint128.Uint128, carrier.W128]{}},
}

func TestLoads(t *testing.T) {
	for _, w := range suites {
		t.Run(w.name, w.s.loads)
	}
}

func TestFused(t *testing.T) {
	for _, w := range suites {
		t.Run(w.name, w.s.fused)
	}
}

// buffer returns random bytes viewed as packed values, with the slack Load
// needs after the last one.
func (suite[B, C, A]) buffer(r *rand.Rand) ([]byte, []uintx.Uint[B, C, A]) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	return buf, Slice[uintx.Uint[B, C, A]](buf)
}

func (s suite[B, C, A]) loads(t *testing.T) {
	var a A
	r := rand.New(rand.NewPCG(1, 1))
	buf, vals := s.buffer(r)
	require.NotEmpty(t, vals)

	size, csize := vals[0].Size(), vals[0].CarrierSize()
	for i := range vals {
		assert.Equal(t, vals[i].ToNative(), LoadClamped(&vals[i]), "element %d", i)

		raw := Load(&vals[i])
		assert.Equal(t, vals[i].ToNative(), a.And(raw, vals[i].MaxValue()))
		if Direct() {
			off := i * size
			assert.Equal(t, a.Load(buf[off:off+csize]), raw, "raw load includes the following bytes")
		} else {
			assert.Equal(t, vals[i].ToNative(), raw)
		}
	}
}

func (s suite[B, C, A]) fused(t *testing.T) {
	var a A
	r := rand.New(rand.NewPCG(2, 2))
	_, vals := s.buffer(r)

	for i := range vals {
		p := &vals[i]
		x := p.ToNative()
		n := a.Narrow(uint128.New(r.Uint64(), r.Uint64()))
		for j := range vals {
			q := &vals[j]
			y := q.ToNative()

			assert.Equal(t, a.Add(x, y), Add(p, q))
			assert.Equal(t, a.Sub(x, y), Sub(p, q))
			assert.Equal(t, a.Mul(x, y), Mul(p, q))
			assert.Equal(t, p.WrappingAdd(*q), AddPacked(p, q))
			assert.Equal(t, p.WrappingSub(*q), SubPacked(p, q))
			assert.Equal(t, p.WrappingMul(*q), MulPacked(p, q))

			assert.Equal(t, x, a.Or(And(p, q), AndNative(p, a.Not(y))), "x&y | x&^y")
			assert.Equal(t, p.And(*q), AndPacked(p, q))
			assert.Equal(t, p.Or(*q), OrPacked(p, q))
			assert.Equal(t, p.Xor(*q), XorPacked(p, q))
			assert.Equal(t, a.Xor(x, y), Xor(p, q))

			if !q.IsZero() {
				assert.Equal(t, p.Div(*q), DivPacked(p, q))
				assert.Equal(t, p.Rem(*q), RemPacked(p, q))
				assert.Equal(t, p.Div(*q).ToNative(), Div(p, q))
				assert.Equal(t, p.Rem(*q).ToNative(), Rem(p, q))
			}
		}

		assert.Equal(t, a.Add(x, n), AddNative(p, n))
		assert.Equal(t, a.Sub(x, n), SubNative(p, n))
		assert.Equal(t, a.Mul(x, n), MulNative(p, n))
		assert.Equal(t, a.And(x, n), AndNative(p, n))
		assert.Equal(t, a.Or(x, n), OrNative(p, n))
		assert.Equal(t, a.Xor(x, n), XorNative(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.Add(x, n)), AddNativePacked(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.Or(x, n)), OrNativePacked(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.Mul(x, n)), MulNativePacked(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.Sub(x, n)), SubNativePacked(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.And(x, n)), AndNativePacked(p, n))
		assert.Equal(t, uintx.Pack[B, C, A](a.Xor(x, n)), XorNativePacked(p, n))

		d := a.FromUint64(7)
		assert.Equal(t, quo(a, x, d), DivNative(p, d))
		assert.Equal(t, rem(a, x, d), RemNative(p, d))
		assert.Equal(t, uintx.Pack[B, C, A](quo(a, x, d)), DivNativePacked(p, d))
		assert.Equal(t, uintx.Pack[B, C, A](rem(a, x, d)), RemNativePacked(p, d))
	}
}

func TestSlice(t *testing.T) {
	assert.Nil(t, Slice[uintx.U24](nil))
	assert.Nil(t, Slice[uintx.U24](make([]byte, 3)), "no room for the slack byte")
	assert.Len(t, Slice[uintx.U24](make([]byte, 4)), 1)
	assert.Len(t, Slice[uintx.U24](make([]byte, 10)), 3)
	assert.Len(t, Slice[uintx.U72](make([]byte, 16)), 1)
	assert.Len(t, Slice[uintx.U72](make([]byte, 24)), 1)
	assert.Len(t, Slice[uintx.U72](make([]byte, 25)), 2)
	assert.Len(t, Slice[uintx.U120](make([]byte, 31)), 2)

	assert.Equal(t, 1, Slack[uintx.U24]())
	assert.Equal(t, 3, Slack[uintx.U40]())
	assert.Equal(t, 1, Slack[uintx.U56]())
	assert.Equal(t, 7, Slack[uintx.U72]())
	assert.Equal(t, 1, Slack[uintx.U120]())

	buf := make([]byte, 7)
	vals := Slice[uintx.U24](buf)
	require.Len(t, vals, 2)
	vals[1] = uintx.NewU24(0xABCDEF)
	assert.Equal(t, vals[1].AppendNE(nil), buf[3:6], "the view aliases the buffer")
	assert.Equal(t, uint32(0xABCDEF), LoadClamped(&vals[1]))
}

func TestNoUnalignedEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("UINTX_NO_UNALIGNED", tt.val)
		assert.Equal(t, tt.want, noUnalignedEnv(), "UINTX_NO_UNALIGNED=%q", tt.val)
	}
}

func TestSafePathMatches(t *testing.T) {
	saved := direct
	t.Cleanup(func() { direct = saved })

	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}
	vals := Slice[uintx.U56](buf)
	var got [2][]uint64
	for k, mode := range []bool{false, directCapable} {
		direct = mode
		for i := range vals {
			got[k] = append(got[k], LoadClamped(&vals[i]), AddNative(&vals[i], 1), Xor(&vals[i], &vals[0]))
		}
	}
	assert.Equal(t, got[0], got[1])
}
