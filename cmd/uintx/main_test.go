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

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestWidths(t *testing.T) {
	code, out, _ := runCLI(t, "widths")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "U24")
	assert.Contains(t, out, "16,777,215")
	assert.Contains(t, out, "U120")
	assert.Equal(t, len(widths)+1, strings.Count(out, "\n"))

	code, out, _ = runCLI(t, "widths", "--json")
	require.Equal(t, 0, code)
	var rows []width
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 11)
	assert.Equal(t, 56, rows[3].Bits)
	assert.Equal(t, 7, rows[3].Bytes)
	assert.Equal(t, "uint64", rows[3].Carrier)
}

func TestInspect(t *testing.T) {
	code, out, _ := runCLI(t, "inspect", "--width", "48", "--json", "0x112233445566")
	require.Equal(t, 0, code)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 48, r.Width)
	assert.Equal(t, "18,838,586,676,582", r.Decimal)
	assert.Equal(t, "0x112233445566", r.Hex)
	assert.Equal(t, "66 55 44 33 22 11", r.LE)
	assert.Equal(t, "11 22 33 44 55 66", r.BE)
	assert.Equal(t, 45, r.Len)
	assert.Equal(t, 3, r.LeadingZeros)
	assert.Equal(t, 1, r.TrailingZeros)

	code, _, errOut := runCLI(t, "inspect", "--width", "32", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported width 32")

	code, _, errOut = runCLI(t, "inspect", "--width", "24", "0x1000000")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "value out of range")
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		code int
	}{
		{"add", []string{"add", "1", "2"}, "3 0x3", 0},
		{"checked overflow", []string{"add", "0xffffff", "1"}, "arithmetic overflow", 1},
		{"wrapping", []string{"-p", "wrapping", "add", "0xffffff", "1"}, "0 0x0", 0},
		{"saturating", []string{"-p", "saturating", "add", "0xfffffe", "5"}, "16777215 0xffffff", 0},
		{"saturating sub", []string{"-p", "saturating", "sub", "1", "5"}, "0 0x0", 0},
		{"overflowing", []string{"-p", "overflowing", "mul", "0x800000", "2"}, "0 0x0 overflow", 0},
		{"div", []string{"div", "100", "7"}, "14 0xe", 0},
		{"rem", []string{"rem", "100", "7"}, "2 0x2", 0},
		{"div zero", []string{"div", "1", "0"}, "division by zero", 1},
		{"xor", []string{"xor", "0xff00ff", "0x0ff0f0"}, "15790095 0xf0f00f", 0},
		{"bad op", []string{"pow", "1", "2"}, "unknown operator", 1},
		{"bad policy", []string{"-p", "clamp", "add", "1", "2"}, "unknown policy", 1},
		{"wide", []string{"-w", "120", "-p", "wrapping", "sub", "0", "1"}, "1329227995784915872903807060280344575 0xffffffffffffffffffffffffffffff", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, append([]string{"calc"}, tt.args...)...)
			assert.Equal(t, tt.code, code, errOut)
			if tt.code == 0 {
				assert.Equal(t, tt.want, strings.Join(strings.Fields(out), " "))
			} else {
				assert.Contains(t, errOut, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	code, out, _ := runCLI(t, "convert", "--from", "56", "--to", "24", "0x11223344556677")
	require.Equal(t, 0, code)
	assert.Equal(t, "0x556677  truncated\n", out)

	code, out, _ = runCLI(t, "convert", "--from", "24", "--to", "120", "0x556677")
	require.Equal(t, 0, code)
	assert.Equal(t, "0x556677\n", out)

	code, _, errOut := runCLI(t, "convert", "--from", "56", "--to", "24", "--strict", "0x11223344556677")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "does not fit in 24 bits")
}

func TestVerboseLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "-v", "calc", "add", "1", "2")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "policy=checked")

	_, _, errOut = runCLI(t, "calc", "add", "1", "2")
	assert.Empty(t, errOut)
}
