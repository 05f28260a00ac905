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
	"fmt"
	"strconv"
)

// String returns the decimal representation of u.
func (u Uint[B, C, A]) String() string { return u.Text(10) }

// Text returns the representation of u in the given base, 2 <= base <= 36,
// using lower-case letters for digits >= 10.
func (u Uint[B, C, A]) Text(base int) string {
	if u.Bits() <= 64 {
		return strconv.FormatUint(u.Uint64(), base)
	}
	if base == 10 {
		return u.Uint128().String()
	}
	return u.Big().Text(base)
}

// Format implements fmt.Formatter. It accepts the integer verbs %b, %o, %O,
// %d, %x, %X and treats %v and %s as %d, together with the usual flags,
// width and precision.
func (u Uint[B, C, A]) Format(f fmt.State, verb rune) {
	u.Big().Format(f, verb)
}

// AppendText implements encoding.TextAppender using the decimal form.
func (u Uint[B, C, A]) AppendText(b []byte) ([]byte, error) {
	return append(b, u.String()...), nil
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (u Uint[B, C, A]) MarshalText() ([]byte, error) { return u.AppendText(nil) }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any input
// Parse accepts with base 0.
func (u *Uint[B, C, A]) UnmarshalText(text []byte) error {
	v, err := Parse[Uint[B, C, A]](string(text), 0)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// AppendBinary implements encoding.BinaryAppender. The encoding is the
// Size() little-endian bytes of u.
func (u Uint[B, C, A]) AppendBinary(b []byte) ([]byte, error) {
	return u.AppendLE(b), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u Uint[B, C, A]) MarshalBinary() ([]byte, error) {
	return u.AppendLE(make([]byte, 0, u.Size())), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly Size() little-endian bytes.
func (u *Uint[B, C, A]) UnmarshalBinary(data []byte) error {
	if len(data) != u.Size() {
		return fmt.Errorf("uintx: U%d.UnmarshalBinary: got %d bytes, want %d: %w",
			u.Bits(), len(data), u.Size(), ErrLength)
	}
	*u = u.withBytes(data, hostBigEndian)
	return nil
}
