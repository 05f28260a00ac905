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

// SaturatingAdd returns u+v, clamped to the largest value of the width.
func (u Uint[B, C, A]) SaturatingAdd(v Uint[B, C, A]) Uint[B, C, A] {
	if r, over := u.OverflowingAdd(v); !over {
		return r
	}
	return u.pack(u.MaxValue())
}

// SaturatingSub returns u-v, clamped to zero.
func (u Uint[B, C, A]) SaturatingSub(v Uint[B, C, A]) Uint[B, C, A] {
	if r, over := u.OverflowingSub(v); !over {
		return r
	}
	return Uint[B, C, A]{}
}

// SaturatingMul returns u*v, clamped to the largest value of the width.
func (u Uint[B, C, A]) SaturatingMul(v Uint[B, C, A]) Uint[B, C, A] {
	if r, over := u.OverflowingMul(v); !over {
		return r
	}
	return u.pack(u.MaxValue())
}

// SaturatingAddNative returns u+n, clamped to the largest value of the width.
func (u Uint[B, C, A]) SaturatingAddNative(n C) Uint[B, C, A] {
	if r, over := u.OverflowingAddNative(n); !over {
		return r
	}
	return u.pack(u.MaxValue())
}

// SaturatingSubNative returns u-n, clamped to zero.
func (u Uint[B, C, A]) SaturatingSubNative(n C) Uint[B, C, A] {
	if r, over := u.OverflowingSubNative(n); !over {
		return r
	}
	return Uint[B, C, A]{}
}

// SaturatingMulNative returns u*n, clamped to the largest value of the width.
func (u Uint[B, C, A]) SaturatingMulNative(n C) Uint[B, C, A] {
	if r, over := u.OverflowingMulNative(n); !over {
		return r
	}
	return u.pack(u.MaxValue())
}

// AbsDiff returns |u-v|.
func (u Uint[B, C, A]) AbsDiff(v Uint[B, C, A]) Uint[B, C, A] {
	if u.Less(v) {
		return v.WrappingSub(u)
	}
	return u.WrappingSub(v)
}
