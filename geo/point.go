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
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/golang/geo/r2"
)

// Float is the coordinate type. Integer-valued inputs up to 2^53 are exact.
type Float = float64

// Eps is the tolerance used by Equal, Sign and Point.Eq.
const Eps Float = 1e-9

// Equal reports whether a and b differ by at most Eps.
func Equal(a, b Float) bool {
	return math.Abs(a-b) <= Eps
}

// Sign returns 0 if a is within Eps of zero, otherwise -1 or +1.
func Sign(a Float) int {
	switch {
	case Equal(a, 0):
		return 0
	case a > 0:
		return 1
	default:
		return -1
	}
}

// Point is a 2D point or vector.
type Point struct {
	X, Y Float
}

// Pt is a convenience function to create a Point.
func Pt(x, y Float) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at distance r from the origin and angle theta.
func Polar(r, theta Float) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: r * cos, Y: r * sin}
}

// Unit returns the unit vector at angle theta.
func Unit(theta Float) Point {
	return Polar(1, theta)
}

// FromR2 converts an r2.Point.
func FromR2(q r2.Point) Point {
	return Point{X: q.X, Y: q.Y}
}

// R2 converts p to an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(s Float) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Div(s Float) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Abs returns the length of the vector.
func (p Point) Abs() Float {
	return math.Hypot(p.X, p.Y)
}

// Norm returns the squared length of the vector.
func (p Point) Norm() Float {
	return p.Dot(p)
}

// Arg returns the angle of the vector in (-pi, pi].
func (p Point) Arg() Float {
	return math.Atan2(p.Y, p.X)
}

// Eq reports whether both coordinates are Equal.
func (p Point) Eq(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Cross returns the 2D cross product p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) Float {
	return diffProd(p.X, q.Y, p.Y, q.X)
}

// Dot returns the dot product p.X*q.X + p.Y*q.Y.
func (p Point) Dot(q Point) Float {
	return sumProd(p.X, q.X, p.Y, q.Y)
}

// Rotate returns p rotated by radians counter-clockwise around center.
func (p Point) Rotate(center Point, radians Float) Point {
	d := p.Sub(center)
	sin, cos := math.Sincos(radians)
	return Point{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	}.Add(center)
}

// Less orders points by X, then by Y. The comparison is exact.
func (p Point) Less(q Point) bool {
	return Compare(p, q) < 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Scan implements fmt.Scanner. It reads two whitespace-separated
// coordinates, so fmt.Fscan(r, &p) reads a point from "x y".
func (p *Point) Scan(state fmt.ScanState, verb rune) error {
	var coords [2]Float
	for i := range coords {
		tok, err := state.Token(true, nil)
		if err != nil {
			return err
		}
		if len(tok) == 0 {
			return io.ErrUnexpectedEOF
		}
		v, err := strconv.ParseFloat(string(tok), 64)
		if err != nil {
			return fmt.Errorf("geo: scanning point coordinate %q: %w", tok, err)
		}
		coords[i] = v
	}
	*p = Point{X: coords[0], Y: coords[1]}
	return nil
}

// Cross returns the 2D cross product of a and b.
func Cross(a, b Point) Float {
	return a.Cross(b)
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) Float {
	return a.Dot(b)
}

// Rotate returns p rotated by radians counter-clockwise around center.
func Rotate(p, center Point, radians Float) Point {
	return p.Rotate(center, radians)
}

// Orientation returns +1 if a, b, c turn counter-clockwise, -1 if
// clockwise and 0 if they are collinear within Eps.
func Orientation(a, b, c Point) int {
	return Sign(b.Sub(a).Cross(c.Sub(a)))
}

// Compare orders points by X, then by Y, for use with slices.SortFunc.
func Compare(p, q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// SortX sorts points in-place by X, then by Y.
func SortX(points []Point) {
	slices.SortFunc(points, Compare)
}
