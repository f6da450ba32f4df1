// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// probTol is the tolerance beyond which a probability outside [0, 1]
// is reported as unstable rather than attributed to rounding.
const probTol = 1e-9

// A CollisionProbResult is the result of CollisionProb. The exact
// methods fill every field; MaseApprox computes no partitions or
// coefficients.
type CollisionProbResult struct {
	// N is the number of draws.
	N int

	// Method is the method that produced this result.
	Method Method

	// Prob is the probability that at least two of the N draws
	// land in the same category.
	//
	// The exact methods compute Prob as an alternating sum, so
	// rounding error can push it slightly outside [0, 1]. Prob is
	// reported as computed, never clamped; Unstable is set when it
	// falls outside [0, 1] by more than rounding tolerance.
	Prob float64

	// PowerSums holds the power sums of the probability vector:
	// PowerSums[k] is Σ_i prob[i]^k, for k up to N with an exact
	// method and up to min(N, 5) with MaseApprox. PowerSums[0] is
	// the number of categories.
	PowerSums []float64

	// Partitions is the enumerated partition set, one row per
	// integer partition of N in multiplicity form. It is nil for
	// MaseApprox.
	Partitions *mat.Dense

	// Coefficients holds the inclusion-exclusion coefficient of
	// each row of Partitions, in the same order. It is nil for
	// MaseApprox.
	Coefficients []float64

	// Advice is a non-fatal warning, or "" if there is none. It is
	// set before computation begins when an exact method is
	// requested for more than ExactEnumLimit draws.
	Advice string

	// Unstable reports that Prob fell outside [0, 1] by more than
	// rounding tolerance. This indicates numerical instability in
	// the alternating exact sum, or inputs far outside the
	// asymptotic regime of MaseApprox.
	Unstable bool
}

// CollisionProb returns the probability that at least two of n draws,
// made independently from the category distribution prob, land in the
// same category.
//
// prob gives the occurrence probability of each category and must
// have at least one positive entry. It is used as given: the result
// is a probability of the generalized birthday problem only to the
// extent that prob sums to 1.
//
// Exact and ExactFast compute the probability by inclusion-exclusion
// over all integer partitions of n. Their cost grows with the
// partition count p(n); past ExactEnumLimit draws the result carries
// Advice recommending MaseApprox, which costs O(len(prob)) and needs
// no enumeration.
func CollisionProb(n int, prob []float64, method Method) (*CollisionProbResult, error) {
	if n < 1 {
		return nil, ErrDraws
	}
	if !hasMass(prob) {
		return nil, ErrNoCategories
	}

	res := &CollisionProbResult{N: n, Method: method}
	switch method {
	case Exact, ExactFast:
		if n > ExactEnumLimit {
			res.Advice = fmt.Sprintf("%d draws exceed ExactEnumLimit (%d) and exact enumeration may be impractical; consider MaseApprox", n, ExactEnumLimit)
		}
		enum := ExactEnumerator
		if method == ExactFast {
			enum = FastEnumerator
		}
		if err := exactProb(n, prob, enum, res); err != nil {
			return nil, err
		}
	case MaseApprox:
		res.PowerSums = PowerSums(prob, min(n, 5))
		res.Prob = maseProb(n, res.PowerSums)
	default:
		return nil, fmt.Errorf("%w: %v", ErrMethod, method)
	}
	res.Unstable = !(res.Prob >= -probTol && res.Prob <= 1+probTol)
	return res, nil
}

func hasMass(prob []float64) bool {
	for _, p := range prob {
		if p > 0 {
			return true
		}
	}
	return false
}
