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
	"encoding/binary"
	"strconv"
	"unsafe"
)

// Lane is a constraint for the native element types a packed value can be
// split into. Float lanes carry raw IEEE 754 bits, so a U96 splits into
// three float32.
type Lane interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Split returns the bytes of u viewed as consecutive lanes of type L. Lanes
// appear in storage order and each lane reads its bytes in host byte order,
// so the result is what a C union of the two layouts would show.
//
// It panics with ErrLaneSize if the lane size does not divide u.Size().
//
//	lanes := uintx.Split[uint16](uintx.NewU48(0x0003_0002_0001))
//	// [1 2 3] on a little-endian host
func Split[L Lane, D Packed[D]](u D) []L {
	var buf [16]byte
	b := u.AppendNE(buf[:0])
	size := laneSize[L]()
	if len(b)%size != 0 {
		panic(laneError("split into", u.Bits(), 8*size))
	}
	out := make([]L, len(b)/size)
	for i := range out {
		out[i] = loadLane[L](b[i*size:])
	}
	return out
}

// Join is the inverse of Split. It panics with ErrLaneSize if the lanes do
// not cover exactly D.Size() bytes.
func Join[D Packed[D], L Lane](lanes []L) D {
	var (
		d   D
		buf [16]byte
	)
	size := laneSize[L]()
	if len(lanes)*size != d.Size() {
		panic(laneError("join from", d.Bits(), 8*size))
	}
	for i, l := range lanes {
		storeLane(buf[i*size:], l)
	}
	return d.withBytes(buf[:], false)
}

// SplitPacked returns the bytes of u viewed as consecutive packed lanes of
// the narrower width L, for example a U48 as two U24.
func SplitPacked[L Packed[L], D Packed[D]](u D) []L {
	var (
		buf [16]byte
		l   L
	)
	b := u.AppendNE(buf[:0])
	size := l.Size()
	if len(b)%size != 0 {
		panic(laneError("split into", u.Bits(), l.Bits()))
	}
	out := make([]L, len(b)/size)
	for i := range out {
		out[i] = l.withBytes(b[i*size:], false)
	}
	return out
}

// JoinPacked is the inverse of SplitPacked.
func JoinPacked[D Packed[D], L Packed[L]](lanes []L) D {
	var (
		d   D
		buf [16]byte
	)
	b := buf[:0]
	for _, l := range lanes {
		b = l.AppendNE(b)
	}
	if len(b) != d.Size() {
		var l L
		panic(laneError("join from", d.Bits(), l.Bits()))
	}
	return d.withBytes(b, false)
}

func laneSize[L Lane]() int {
	var l L
	return int(unsafe.Sizeof(l))
}

// loadLane and storeLane move the lane's bits without numeric conversion.
func loadLane[L Lane](b []byte) L {
	var l L
	p := unsafe.Pointer(&l)
	switch laneSize[L]() {
	case 1:
		*(*uint8)(p) = b[0]
	case 2:
		*(*uint16)(p) = binary.NativeEndian.Uint16(b)
	case 4:
		*(*uint32)(p) = binary.NativeEndian.Uint32(b)
	default:
		*(*uint64)(p) = binary.NativeEndian.Uint64(b)
	}
	return l
}

func storeLane[L Lane](b []byte, l L) {
	p := unsafe.Pointer(&l)
	switch laneSize[L]() {
	case 1:
		b[0] = *(*uint8)(p)
	case 2:
		binary.NativeEndian.PutUint16(b, *(*uint16)(p))
	case 4:
		binary.NativeEndian.PutUint32(b, *(*uint32)(p))
	default:
		binary.NativeEndian.PutUint64(b, *(*uint64)(p))
	}
}

func laneError(op string, bits, laneBits int) error {
	return &ArithmeticError{Op: op + " " + strconv.Itoa(laneBits) + "-bit lanes", Bits: bits, Err: ErrLaneSize}
}
