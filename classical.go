// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package birthday

import (
	"math"

	"github.com/aclements/go-birthday/mathx"
	"gonum.org/v1/gonum/stat/combin"
)

// UniformProb returns the classical birthday collision probability
// for n draws from categories equally likely categories,
//
//	1 - (categories)_n / categories^n
//
// evaluated in log space so that it remains usable for thousands of
// categories. It returns 0 for n < 2, 1 for n > categories, and NaN
// for categories < 1.
//
// This is the special case of CollisionProb for a uniform probability
// vector, computable in closed form without enumeration.
func UniformProb(n, categories int) float64 {
	switch {
	case categories < 1:
		return math.NaN()
	case n < 2:
		return 0
	case n > categories:
		return 1
	}
	logNone := mathx.LogFallingFactorial(categories, n) -
		float64(n)*math.Log(float64(categories))
	return 1 - math.Exp(logNone)
}

// ExpectedCollisions returns the expected number of colliding pairs
// among n draws from the category distribution prob,
//
//	C(n, 2) · Σ_i prob[i]²
//
// which holds in closed form for any category distribution. It is 0
// for n < 2. Unlike the collision probability, the expectation needs
// no enumeration at any n.
func ExpectedCollisions(n int, prob []float64) float64 {
	if n < 2 {
		return 0
	}
	ps := PowerSums(prob, 2)
	return float64(combin.Binomial(n, 2)) * ps[2]
}
