// Copyright 2025 go-kactl Authors
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

package geo

import (
	"math"
	"os"
	"strconv"
)

// Mode represents how products are evaluated by Cross and Dot.
type Mode int

const (
	// ModePlain evaluates products with ordinary float arithmetic.
	ModePlain Mode = iota

	// ModeFMA evaluates products with FMA-corrected arithmetic.
	ModeFMA
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentMode is the evaluation mode for this runtime.
// Set by init() in dispatch_*.go files.
var currentMode Mode

// Function hooks used by Cross and Dot, swapped by setMode.
var (
	diffProd = diffProdPlain
	sumProd  = sumProdPlain
)

// CurrentMode returns the evaluation mode being used.
func CurrentMode() Mode {
	return currentMode
}

// NoFMAEnv checks if the GEO_NO_FMA environment variable is set.
// When set, the plain path is used regardless of CPU capabilities.
func NoFMAEnv() bool {
	val := os.Getenv("GEO_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setMode(m Mode) {
	currentMode = m
	switch m {
	case ModeFMA:
		diffProd = diffProdFMA
		sumProd = sumProdFMA
	default:
		diffProd = diffProdPlain
		sumProd = sumProdPlain
	}
}

// diffProdPlain returns a*b - c*d.
func diffProdPlain(a, b, c, d Float) Float {
	return a*b - c*d
}

// sumProdPlain returns a*b + c*d.
func sumProdPlain(a, b, c, d Float) Float {
	return a*b + c*d
}

// diffProdFMA returns a*b - c*d using Kahan's algorithm: the rounding error
// of c*d is recovered exactly by an FMA and added back.
func diffProdFMA(a, b, c, d Float) Float {
	w := c * d
	e := math.FMA(-c, d, w)
	f := math.FMA(a, b, -w)
	return f + e
}

// sumProdFMA returns a*b + c*d with the same error compensation.
func sumProdFMA(a, b, c, d Float) Float {
	w := c * d
	e := math.FMA(c, d, -w)
	f := math.FMA(a, b, w)
	return f + e
}
