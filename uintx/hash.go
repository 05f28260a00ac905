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

import "github.com/zeebo/xxh3"

// Hash returns a 64-bit hash of u computed over its little-endian bytes, so
// the result is the same on every host.
func (u Uint[B, C, A]) Hash() uint64 {
	var buf [16]byte
	return xxh3.Hash(u.AppendLE(buf[:0]))
}
