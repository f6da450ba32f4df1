// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import "math"

// MinDraws returns the smallest number of draws from the category
// distribution prob for which the collision probability reaches
// target. For the classical 365-day birthday problem the answer for
// target 0.5 is the textbook 23.
//
// MinDraws brackets the answer with the Mase approximation, which is
// O(1) per probe after the power sums are computed, and then refines
// the bracket with exact probabilities when the answer is at most
// MinDrawsExactLimit. A target of 1 is reached only by the pigeonhole
// principle, with one draw more than there are categories of positive
// probability.
func MinDraws(target float64, prob []float64) (int, error) {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return 0, ErrTarget
	}
	npos := 0
	for _, p := range prob {
		if p > 0 {
			npos++
		}
	}
	if npos == 0 {
		return 0, ErrNoCategories
	}
	if target == 0 {
		return 1, nil
	}
	if target == 1 {
		return npos + 1, nil
	}

	// Bracket the answer with the approximate probability. Beyond
	// npos draws the true probability is exactly 1, so the bracket
	// always closes even for targets the asymptotic form never
	// reaches.
	ps := PowerSums(prob, 5)
	approx := func(n int) float64 {
		if n > npos {
			return 1
		}
		return maseProb(n, ps)
	}
	lo, hi := 1, 2 // a single draw never collides, so lo starts valid
	for approx(hi) < target {
		lo, hi = hi, hi*2
	}
	for hi-lo > 1 {
		if mid := lo + (hi-lo)/2; approx(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	n := hi
	if n > MinDrawsExactLimit {
		return n, nil
	}

	// The approximation rarely misses by more than one draw, so walk
	// the exact probability to the boundary. If the exact values
	// push past MinDrawsExactLimit the asymptotic answer stands.
	for n <= MinDrawsExactLimit {
		r, err := CollisionProb(n, prob, ExactFast)
		if err != nil {
			return 0, err
		}
		if r.Prob >= target {
			break
		}
		n++
	}
	for n > 1 {
		r, err := CollisionProb(n-1, prob, ExactFast)
		if err != nil {
			return 0, err
		}
		if r.Prob < target {
			break
		}
		n--
	}
	return n, nil
}
