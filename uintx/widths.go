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
	"lukechampine.com/uint128"
)

// Width table. Every supported width is one instantiation of Uint: the
// storage array, the smallest native carrier holding the width, and that
// carrier's operation table.
type (
	U24  = Uint[[3]byte, uint32, carrier.W32]
	U40  = Uint[[5]byte, uint64, carrier.W64]
	U48  = Uint[[6]byte, uint64, carrier.W64]
	U56  = Uint[[7]byte, uint64, carrier.W64]
	U72  = Uint[[9]byte, uint128.Uint128, carrier.W128]
	U80  = Uint[[10]byte, uint128.Uint128, carrier.W128]
	U88  = Uint[[11]byte, uint128.Uint128, carrier.W128]
	U96  = Uint[[12]byte, uint128.Uint128, carrier.W128]
	U104 = Uint[[13]byte, uint128.Uint128, carrier.W128]
	U112 = Uint[[14]byte, uint128.Uint128, carrier.W128]
	U120 = Uint[[15]byte, uint128.Uint128, carrier.W128]
)

// NewU24 returns the low 24 bits of v.
func NewU24(v uint32) U24 { return Pack[[3]byte, uint32, carrier.W32](v) }

// NewU40 returns the low 40 bits of v.
func NewU40(v uint64) U40 { return Pack[[5]byte, uint64, carrier.W64](v) }

// NewU48 returns the low 48 bits of v.
func NewU48(v uint64) U48 { return Pack[[6]byte, uint64, carrier.W64](v) }

// NewU56 returns the low 56 bits of v.
func NewU56(v uint64) U56 { return Pack[[7]byte, uint64, carrier.W64](v) }

// NewU72 returns the low 72 bits of v.
func NewU72(v uint128.Uint128) U72 {
	return Pack[[9]byte, uint128.Uint128, carrier.W128](v)
}

// NewU80 returns the low 80 bits of v.
func NewU80(v uint128.Uint128) U80 {
	return Pack[[10]byte, uint128.Uint128, carrier.W128](v)
}

// NewU88 returns the low 88 bits of v.
func NewU88(v uint128.Uint128) U88 {
	return Pack[[11]byte, uint128.Uint128, carrier.W128](v)
}

// NewU96 returns the low 96 bits of v.
func NewU96(v uint128.Uint128) U96 {
	return Pack[[12]byte, uint128.Uint128, carrier.W128](v)
}

// NewU104 returns the low 104 bits of v.
func NewU104(v uint128.Uint128) U104 {
	return Pack[[13]byte, uint128.Uint128, carrier.W128](v)
}

// NewU112 returns the low 112 bits of v.
func NewU112(v uint128.Uint128) U112 {
	return Pack[[14]byte, uint128.Uint128, carrier.W128](v)
}

// NewU120 returns the low 120 bits of v.
func NewU120(v uint128.Uint128) U120 {
	return Pack[[15]byte, uint128.Uint128, carrier.W128](v)
}
