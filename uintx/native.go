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
	"github.com/ajroetker/go-uintx/internal/carrier"
	"golang.org/x/sys/cpu"
)

// hostBigEndian is the host byte order. Every byte-order decision in this
// package reads this one flag.
var hostBigEndian = cpu.IsBigEndian

// offset returns where the N stored bytes sit inside a carrier-sized buffer
// so that the remaining bytes act as zero extension.
func offset(carrierSize, n int) int {
	if hostBigEndian {
		return carrierSize - n
	}
	return 0
}

// permute returns b, byte-reversed when reverse is set. All byte-order
// conversions in this package go through it.
func permute[B Bytes](b B, reverse bool) B {
	if !reverse {
		return b
	}
	n := len(b)
	for i := range n / 2 {
		b[i], b[n-1-i] = b[n-1-i], b[i]
	}
	return b
}

// ToNative returns the value in its native carrier. The result is always in
// [0, MaxValue()].
func (u Uint[B, C, A]) ToNative() C {
	var (
		a   A
		buf [16]byte
	)
	off := offset(a.Size(), len(u.b))
	for i := range len(u.b) {
		buf[off+i] = u.b[i]
	}
	return a.Load(buf[:a.Size()])
}

// Pack returns the low 8*len(B) bits of v. Higher bits are dropped.
//
// Most callers want the NewUxx constructors or From instead.
func Pack[B Bytes, C carrier.Carrier, A carrier.Arith[C]](v C) Uint[B, C, A] {
	var (
		a   A
		buf [16]byte
		u   Uint[B, C, A]
	)
	a.Store(buf[:a.Size()], v)
	off := offset(a.Size(), len(u.b))
	for i := range len(u.b) {
		u.b[i] = buf[off+i]
	}
	return u
}

func (u Uint[B, C, A]) pack(v C) Uint[B, C, A] {
	return Pack[B, C, A](v)
}

// LEBytes returns the value as little-endian bytes.
func (u Uint[B, C, A]) LEBytes() B { return permute(u.b, hostBigEndian) }

// BEBytes returns the value as big-endian bytes.
func (u Uint[B, C, A]) BEBytes() B { return permute(u.b, !hostBigEndian) }

// NEBytes returns the stored bytes, which are in host byte order.
func (u Uint[B, C, A]) NEBytes() B { return u.b }

// PutLE writes the value into dst in little-endian order. It panics if
// dst is shorter than Size().
func (u Uint[B, C, A]) PutLE(dst []byte) { put(dst, permute(u.b, hostBigEndian)) }

// PutBE writes the value into dst in big-endian order. It panics if dst is
// shorter than Size().
func (u Uint[B, C, A]) PutBE(dst []byte) { put(dst, permute(u.b, !hostBigEndian)) }

// AppendLE appends the little-endian bytes of u to dst.
func (u Uint[B, C, A]) AppendLE(dst []byte) []byte {
	return appendBytes(dst, permute(u.b, hostBigEndian))
}

// AppendBE appends the big-endian bytes of u to dst.
func (u Uint[B, C, A]) AppendBE(dst []byte) []byte {
	return appendBytes(dst, permute(u.b, !hostBigEndian))
}

// AppendNE appends the stored bytes of u to dst.
func (u Uint[B, C, A]) AppendNE(dst []byte) []byte { return appendBytes(dst, u.b) }

// SwapBytes returns u with its byte order reversed.
func (u Uint[B, C, A]) SwapBytes() Uint[B, C, A] {
	return Uint[B, C, A]{b: permute(u.b, true)}
}

// ToLE converts u to little-endian storage: a no-op on little-endian hosts
// and a byte swap on big-endian ones.
func (u Uint[B, C, A]) ToLE() Uint[B, C, A] {
	return Uint[B, C, A]{b: permute(u.b, hostBigEndian)}
}

// ToBE converts u to big-endian storage: a byte swap on little-endian hosts
// and a no-op on big-endian ones.
func (u Uint[B, C, A]) ToBE() Uint[B, C, A] {
	return Uint[B, C, A]{b: permute(u.b, !hostBigEndian)}
}

func (u Uint[B, C, A]) withBytes(b []byte, reverse bool) Uint[B, C, A] {
	_ = b[len(u.b)-1]
	var r Uint[B, C, A]
	for i := range len(r.b) {
		r.b[i] = b[i]
	}
	r.b = permute(r.b, reverse)
	return r
}

// FromLE decodes a value of width D from the first Size() bytes of b in
// little-endian order. It panics if b is too short.
func FromLE[D Packed[D]](b []byte) D {
	var d D
	return d.withBytes(b, hostBigEndian)
}

// FromBE decodes a value of width D from the first Size() bytes of b in
// big-endian order. It panics if b is too short.
func FromBE[D Packed[D]](b []byte) D {
	var d D
	return d.withBytes(b, !hostBigEndian)
}

// FromNE decodes a value of width D from the first Size() bytes of b in
// host byte order. It panics if b is too short.
func FromNE[D Packed[D]](b []byte) D {
	var d D
	return d.withBytes(b, false)
}

func put[B Bytes](dst []byte, b B) {
	_ = dst[len(b)-1]
	for i := range len(b) {
		dst[i] = b[i]
	}
}

func appendBytes[B Bytes](dst []byte, b B) []byte {
	for i := range len(b) {
		dst = append(dst, b[i])
	}
	return dst
}
