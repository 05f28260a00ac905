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
	"testing"

	"github.com/ajroetker/go-uintx/uintx"
)

var sink uint64

func BenchmarkLoad(b *testing.B) {
	vals := Slice[uintx.U48](make([]byte, 6*1024+2))
	for i := range vals {
		vals[i] = uintx.NewU48(uint64(i) * 0x9E3779B97F)
	}

	b.Run("Direct", func(b *testing.B) {
		if !Direct() {
			b.Skip("direct loads disabled")
		}
		for b.Loop() {
			var s uint64
			for i := range vals {
				s += LoadClamped(&vals[i])
			}
			sink = s
		}
	})
	b.Run("Converter", func(b *testing.B) {
		for b.Loop() {
			var s uint64
			for i := range vals {
				s += vals[i].ToNative()
			}
			sink = s
		}
	})
	b.Run("AddPacked", func(b *testing.B) {
		for b.Loop() {
			for i := 1; i < len(vals); i++ {
				vals[i] = AddPacked(&vals[i], &vals[i-1])
			}
		}
	})
}
