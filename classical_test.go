// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"math"
	"testing"
)

func TestUniformProb(t *testing.T) {
	check := func(want float64, n, categories int) {
		t.Helper()
		if got := UniformProb(n, categories); !aeq(want, got) {
			t.Errorf("UniformProb(%d, %d) = %v, want %v", n, categories, got, want)
		}
	}

	check(0.50729723, 23, 365)
	check(0.47569531, 22, 365)
	check(1.0/365, 2, 365)
	check(0, 1, 365)
	check(0, 0, 365)

	// Pigeonhole: more draws than categories.
	check(1, 366, 365)
	check(1, 2, 1)

	if got := UniformProb(2, 0); !math.IsNaN(got) {
		t.Errorf("UniformProb(2, 0) = %v, want NaN", got)
	}
}

func TestUniformProbMatchesExact(t *testing.T) {
	// The closed form and the inclusion-exclusion sum are
	// independent routes to the same number.
	prob := uniform(365)
	for n := 2; n <= 30; n++ {
		r, err := CollisionProb(n, prob, ExactFast)
		if err != nil {
			t.Fatal(err)
		}
		if want := UniformProb(n, 365); !aeq(want, r.Prob) {
			t.Errorf("n = %d: exact %v, closed form %v", n, r.Prob, want)
		}
	}
}

func TestExpectedCollisions(t *testing.T) {
	check := func(want float64, n int, prob []float64) {
		t.Helper()
		if got := ExpectedCollisions(n, prob); !aeq(want, got) {
			t.Errorf("ExpectedCollisions(%d, %v) = %v, want %v", n, prob, got, want)
		}
	}

	// C(23, 2)/365 pairs expected among 23 people.
	check(253.0/365, 23, uniform(365))
	// Two draws from a fair coin: half a collision on average.
	check(0.5, 2, []float64{0.5, 0.5})
	// Every pair collides when there is only one category.
	check(45, 10, []float64{1})
	// Too few draws to form a pair.
	check(0, 1, uniform(365))
	check(0, 0, uniform(365))
}
