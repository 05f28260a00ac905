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

//go:build (amd64 || arm64 || loong64 || ppc64le) && !purego

package unaligned

import (
	"unsafe"

	"github.com/ajroetker/go-uintx/internal/carrier"
	"github.com/ajroetker/go-uintx/uintx"
)

const directCapable = true

// loadDirect reinterprets the storage at p as a carrier. On these targets
// the carrier layout is little-endian, so the value's bytes land in the low
// bits.
//
//go:nocheckptr
func loadDirect[B uintx.Bytes, C carrier.Carrier, A carrier.Arith[C]](p *uintx.Uint[B, C, A]) C {
	return *(*C)(unsafe.Pointer(p))
}
