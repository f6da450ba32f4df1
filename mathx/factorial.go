// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// FallingFactorial returns the falling factorial
//
//	(x)_m = x·(x-1)·…·(x-m+1) = x!/(x-m)!
//
// computed in the log domain as exp(lgamma(x+1) - lgamma(x-m+1)), so
// it does not overflow for x in the hundreds the way a direct product
// of factorials would. The result is subject to ordinary floating
// point rounding, so it is near-integral rather than exactly integral
// for large arguments.
//
// FallingFactorial(x, 0) is 1 for any x ≥ 0. If x < 0, m < 0, or
// m > x, the falling factorial is undefined and the result is NaN.
func FallingFactorial(x, m int) float64 {
	return math.Exp(LogFallingFactorial(x, m))
}

// LogFallingFactorial returns log((x)_m). Like FallingFactorial, it
// returns NaN if x < 0, m < 0, or m > x.
func LogFallingFactorial(x, m int) float64 {
	if x < 0 || m < 0 || m > x {
		return nan
	}
	a, _ := math.Lgamma(float64(x + 1))
	b, _ := math.Lgamma(float64(x - m + 1))
	return a - b
}

// LogFactorial returns log(n!), or NaN if n < 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		return nan
	}
	r, _ := math.Lgamma(float64(n + 1))
	return r
}
