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
	"os"
	"strconv"
)

// direct is set when loads read straight from packed storage.
var direct = directCapable && !noUnalignedEnv()

// Direct reports whether this build and environment use direct unaligned
// loads. When false, every function in this package goes through the safe
// converter.
func Direct() bool {
	return direct
}

// noUnalignedEnv checks the UINTX_NO_UNALIGNED environment variable. Any
// non-empty value other than a false boolean disables direct loads, which
// is useful for comparing the two paths.
func noUnalignedEnv() bool {
	val := os.Getenv("UINTX_NO_UNALIGNED")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
