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

// Package geo provides a 2D point/vector value type for geometry solutions.
//
// Points are immutable values: every operation returns a new Point. The
// coordinate type is Float, and comparisons that care about rounding use the
// package tolerance Eps.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-kactl/geo"
//
//	p := geo.Pt(5, 6)
//	p.Abs()                        // length
//	p.Arg()                        // angle
//	geo.Polar(2, math.Pi/2)        // (0, 2)
//	p.Rotate(geo.Pt(1, 1), math.Pi) // half turn around (1, 1)
//
//	var q geo.Point
//	fmt.Sscan("3 4", &q)           // reads two coordinates
//
// # Precision
//
// Cross and Dot are evaluated as a difference/sum of two products. When the
// CPU has hardware fused multiply-add, both are computed with Kahan's
// FMA-corrected algorithm, which keeps the result within a couple of ulps even
// when the two products nearly cancel. Otherwise plain arithmetic is used.
//
// Set GEO_NO_FMA=1 to force the plain path, which is useful for testing and
// for reproducing results across machines.
package geo
