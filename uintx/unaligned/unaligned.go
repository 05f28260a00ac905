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

// Package unaligned provides direct, unaligned loads of packed integers as
// their native carrier type, and arithmetic fused with those loads.
//
// A packed value of N bytes is read with one machine load of the carrier's
// full size, so the load also reads the CarrierSize()-N bytes that follow
// the value in memory. Those extra bytes are garbage for this purpose: Load
// returns them as-is in the high bits, and every other function masks them
// away before use.
//
// # Safety
//
// Every pointer passed to this package must be valid for reading
// CarrierSize() bytes, and no other goroutine may write that memory during
// the call. Violating this is undefined behavior and is not detected. Slice
// is the safe way to obtain pointers that satisfy the contract:
//
//	buf := make([]byte, 4096)
//	vals := unaligned.Slice[uintx.U40](buf)
//	sum := unaligned.Add(&vals[0], &vals[1])
//
// Direct loads are used on little-endian targets that handle unaligned
// access in hardware: amd64, arm64, loong64 and ppc64le. riscv64 is left
// out because many cores trap misaligned loads and the kernel emulates them,
// which is slower than the converter. Elsewhere, when built with the purego tag, or when
// UINTX_NO_UNALIGNED is set, every function here falls back to the safe
// converter of package uintx with identical results.
package unaligned

import (
	"unsafe"

	"github.com/ajroetker/go-uintx/internal/carrier"
	"github.com/ajroetker/go-uintx/uintx"
)

// Load returns the carrier-sized value starting at p. Only the low
// p.Bits() bits are the value of *p; the rest are whatever follows it in
// memory (or zero when direct loads are disabled).
func Load[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A]) C {
	if direct {
		return loadDirect(p)
	}
	return p.ToNative()
}

// LoadClamped returns *p as its carrier value, always in [0, MaxValue].
func LoadClamped[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A]) C {
	if !direct {
		return p.ToNative()
	}
	var a A
	return a.And(loadDirect(p), p.MaxValue())
}

// Slack returns the number of bytes that must be readable after a value of
// width D for Load to be valid.
func Slack[D uintx.Packed[D]]() int {
	var d D
	return d.CarrierSize() - d.Size()
}

// Slice returns buf viewed as consecutive packed values of width D, leaving
// at least Slack[D]() bytes of buf after the last element so every element
// can be passed to Load. The result aliases buf.
func Slice[D uintx.Packed[D]](buf []byte) []D {
	var d D
	slack := Slack[D]()
	if len(buf) < slack+d.Size() {
		return nil
	}
	n := (len(buf) - slack) / d.Size()
	return unsafe.Slice((*D)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}
