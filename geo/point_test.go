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
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// withMode runs fn with the given evaluation mode and restores the previous one.
func withMode(t *testing.T, m Mode, fn func()) {
	t.Helper()
	prev := CurrentMode()
	setMode(m)
	defer setMode(prev)
	fn()
}

func TestEqualAndSign(t *testing.T) {
	tests := []struct {
		a, b  Float
		equal bool
	}{
		{1, 1, true},
		{1, 1 + 1e-10, true},
		{1, 1 + 1e-8, false},
		{-5, -5 - 5e-10, true},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.equal {
			t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}

	signs := map[Float]int{0: 0, 1e-10: 0, -1e-10: 0, 1e-8: 1, -3: -1, 42: 1}
	for a, want := range signs {
		if got := Sign(a); got != want {
			t.Errorf("Sign(%v) = %d, want %d", a, got, want)
		}
	}
}

func TestCrossDot(t *testing.T) {
	for _, m := range []Mode{ModePlain, ModeFMA} {
		withMode(t, m, func() {
			a, b := Pt(1, 2), Pt(3, 4)
			if got := Cross(a, b); got != -2 {
				t.Errorf("[%s] Cross(%v, %v) = %v, want -2", m, a, b, got)
			}
			if got := Dot(a, b); got != 11 {
				t.Errorf("[%s] Dot(%v, %v) = %v, want 11", m, a, b, got)
			}
			if got := a.Cross(a); got != 0 {
				t.Errorf("[%s] a.Cross(a) = %v, want 0", m, got)
			}
			if got := a.Norm(); got != 5 {
				t.Errorf("[%s] Norm(%v) = %v, want 5", m, a, got)
			}
		})
	}
}

// TestCrossCancellation checks the case where both products exceed 2^53
// and nearly cancel: (1e8+1)(1e8-1) - 1e8*1e8 = -1.
func TestCrossCancellation(t *testing.T) {
	a := Pt(1e8+1, 1e8)
	b := Pt(1e8, 1e8-1)
	withMode(t, ModeFMA, func() {
		if got := a.Cross(b); got != -1 {
			t.Errorf("FMA Cross = %v, want -1", got)
		}
	})
	withMode(t, ModePlain, func() {
		if got := a.Cross(b); got == -1 {
			t.Logf("plain Cross happened to be exact on this platform")
		}
	})
}

func TestMatchesR2(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, m := range []Mode{ModePlain, ModeFMA} {
		withMode(t, m, func() {
			for range 1000 {
				p := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
				q := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
				rp, rq := p.R2(), q.R2()
				if got, want := p.Cross(q), rp.Cross(rq); !Equal(got, want) {
					t.Fatalf("[%s] Cross(%v, %v) = %v, r2 says %v", m, p, q, got, want)
				}
				if got, want := p.Dot(q), rp.Dot(rq); !Equal(got, want) {
					t.Fatalf("[%s] Dot(%v, %v) = %v, r2 says %v", m, p, q, got, want)
				}
			}
		})
	}
}

func TestR2RoundTrip(t *testing.T) {
	p := Pt(-1.5, 7)
	if got := FromR2(p.R2()); got != p {
		t.Errorf("FromR2(R2(%v)) = %v", p, got)
	}
	if got := FromR2(r2.Point{X: 2, Y: 3}); got != Pt(2, 3) {
		t.Errorf("FromR2 = %v, want (2, 3)", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		p, c    Point
		radians Float
		want    Point
	}{
		{"quarter turn origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn origin", Pt(2, 3), Pt(0, 0), math.Pi, Pt(-2, -3)},
		{"half turn center", Pt(2, 1), Pt(1, 1), math.Pi, Pt(0, 1)},
		{"full turn", Pt(5, 6), Pt(-1, 2), 2 * math.Pi, Pt(5, 6)},
		{"center fixed", Pt(3, 3), Pt(3, 3), 1.234, Pt(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rotate(tt.p, tt.c, tt.radians); !got.Eq(tt.want) {
				t.Errorf("Rotate(%v, %v, %v) = %v, want %v", tt.p, tt.c, tt.radians, got, tt.want)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	p := Polar(2, math.Pi/2)
	if !p.Eq(Pt(0, 2)) {
		t.Errorf("Polar(2, pi/2) = %v, want (0, 2)", p)
	}
	if u := Unit(math.Pi / 3); !Equal(u.Abs(), 1) || !Equal(u.Arg(), math.Pi/3) {
		t.Errorf("Unit(pi/3) = %v: abs %v arg %v", u, u.Abs(), u.Arg())
	}
	if got := Pt(3, 4).Abs(); got != 5 {
		t.Errorf("Abs(3, 4) = %v, want 5", got)
	}
}

func TestArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, -1)
	if got := a.Add(b); got != Pt(5, 1) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Pt(-3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(2); got != Pt(2, -0.5) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Neg(); got != Pt(-1, -2) {
		t.Errorf("Neg = %v", got)
	}
}

func TestOrientation(t *testing.T) {
	o := Pt(0, 0)
	if got := Orientation(o, Pt(1, 0), Pt(0, 1)); got != 1 {
		t.Errorf("ccw Orientation = %d, want 1", got)
	}
	if got := Orientation(o, Pt(0, 1), Pt(1, 0)); got != -1 {
		t.Errorf("cw Orientation = %d, want -1", got)
	}
	if got := Orientation(o, Pt(1, 1), Pt(2, 2+1e-12)); got != 0 {
		t.Errorf("collinear Orientation = %d, want 0", got)
	}
}

func TestSortX(t *testing.T) {
	points := []Point{Pt(2, 1), Pt(1, 5), Pt(1, -1), Pt(0, 0), Pt(2, 0)}
	SortX(points)
	want := []Point{Pt(0, 0), Pt(1, -1), Pt(1, 5), Pt(2, 0), Pt(2, 1)}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("SortX mismatch (-want +got):\n%s", diff)
	}
	if !Pt(1, 2).Less(Pt(1, 3)) || Pt(1, 3).Less(Pt(1, 3)) {
		t.Errorf("Less is not a strict lexicographic order")
	}
}

func TestScan(t *testing.T) {
	var p, q Point
	n, err := fmt.Sscan("3.5 -2\n1e3 4", &p, &q)
	if err != nil {
		t.Fatalf("Sscan: %v", err)
	}
	if n != 2 || p != Pt(3.5, -2) || q != Pt(1000, 4) {
		t.Errorf("Sscan = %d, %v, %v", n, p, q)
	}

	if _, err := fmt.Sscan("x 1", &p); err == nil {
		t.Errorf("Sscan(\"x 1\") succeeded, want error")
	}
}

func TestString(t *testing.T) {
	if got := Pt(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String = %q", got)
	}
}

func TestModeString(t *testing.T) {
	if ModePlain.String() != "plain" || ModeFMA.String() != "fma" || Mode(7).String() != "unknown" {
		t.Errorf("unexpected Mode names")
	}
}

func TestNoFMAEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("GEO_NO_FMA", tt.val)
		if got := NoFMAEnv(); got != tt.want {
			t.Errorf("NoFMAEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func BenchmarkCross(b *testing.B) {
	p, q := Pt(1.25, -3.5), Pt(7.75, 2.125)
	for _, m := range []Mode{ModePlain, ModeFMA} {
		b.Run(m.String(), func(b *testing.B) {
			prev := CurrentMode()
			setMode(m)
			defer setMode(prev)
			var sink Float
			for i := 0; i < b.N; i++ {
				sink += p.Cross(q)
			}
			_ = sink
		})
	}
}
