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
	"errors"
	"fmt"
)

var (
	// ErrOverflow reports a result outside [0, MaxValue] for the width.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrDivideByZero reports a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrShiftOverflow reports a shift amount not below the bit width.
	ErrShiftOverflow = errors.New("shift amount exceeds bit width")

	// ErrLaneSize reports a lane size that does not divide the value size.
	ErrLaneSize = errors.New("lane size does not divide value size")

	// ErrLength reports encoded input of the wrong length.
	ErrLength = errors.New("invalid encoded length")
)

// ArithmeticError is the panic value of the default operators (Add, Div,
// Shl, ...) when their result is undefined for the width. Recover it and use
// errors.Is against the sentinel errors above.
type ArithmeticError struct {
	Op   string // "add", "sub", "mul", "div", "rem", "shl", "shr"
	Bits int    // logical width of the operands
	Err  error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("uintx: U%d %s: %v", e.Bits, e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

func arithPanic(op string, bits int, err error) {
	panic(&ArithmeticError{Op: op, Bits: bits, Err: err})
}
