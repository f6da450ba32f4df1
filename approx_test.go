// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"math"
	"testing"
)

func TestMaseApproxAgreesWithExact(t *testing.T) {
	// The expansion is asymptotic, but over the classical birthday
	// range it already tracks the exact probability to better than
	// three digits.
	prob := uniform(365)
	for _, n := range []int{10, 15, 20, 23, 30} {
		exact, err := CollisionProb(n, prob, ExactFast)
		if err != nil {
			t.Fatal(err)
		}
		approx, err := CollisionProb(n, prob, MaseApprox)
		if err != nil {
			t.Fatal(err)
		}
		if diff := math.Abs(exact.Prob - approx.Prob); diff > 1e-3 {
			t.Errorf("n = %d: exact %v, approx %v, diff %v", n, exact.Prob, approx.Prob, diff)
		}
	}
}

func TestMaseApproxSmallN(t *testing.T) {
	// With a single draw no correction factor applies and the
	// probability is exactly 0.
	r, err := CollisionProb(1, []float64{0.2, 0.3, 0.5}, MaseApprox)
	if err != nil {
		t.Fatal(err)
	}
	if r.Prob != 0 {
		t.Errorf("n = 1: got %v, want 0", r.Prob)
	}

	// With two draws only the first factor applies:
	// 1 - exp(-P2) for (n)_2 = 2.
	r, err = CollisionProb(2, []float64{0.5, 0.5}, MaseApprox)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1 - math.Exp(-0.5); !aeq(want, r.Prob) {
		t.Errorf("n = 2: got %v, want %v", r.Prob, want)
	}
}

func TestMaseApproxLargeN(t *testing.T) {
	// Far past the exact methods' reach the approximation still
	// behaves like a probability.
	prob := uniform(365)
	last := 0.0
	for _, n := range []int{50, 100, 200, 365} {
		r, err := CollisionProb(n, prob, MaseApprox)
		if err != nil {
			t.Fatal(err)
		}
		if r.Prob < last || r.Prob > 1 {
			t.Errorf("n = %d: got %v after %v", n, r.Prob, last)
		}
		if r.Unstable {
			t.Errorf("n = %d: unexpected instability at %v", n, r.Prob)
		}
		last = r.Prob
	}
	if last < 0.999 {
		t.Errorf("P(collision) among 365 draws = %v, want nearly 1", last)
	}
}
