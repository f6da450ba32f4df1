// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package birthday computes collision probabilities for the
// generalized birthday problem.
//
// In the generalized birthday problem, n items are drawn
// independently from N categories with known but possibly unequal
// occurrence probabilities, and the question is the probability that
// at least two draws land in the same category. With 365 equally
// likely categories this is the classical birthday problem; the
// generalized form covers applications such as surname collision
// studies, where the category distribution is far from uniform.
//
// CollisionProb computes this probability either exactly, by
// inclusion-exclusion over the integer partitions of n, or
// approximately, by the asymptotic expansion of Mase [1]. The exact
// path also reports the enumerated partitions, their coefficients,
// and the power sums of the probability vector. Its cost is driven by
// the integer partition count p(n), which grows quickly (see package
// partition), so for large n the approximation is the only practical
// method; it needs O(N) time and agrees with the exact probability to
// a few digits already for moderate n.
//
// [1] Mase, Shigeru (1992). "Approximations to the Birthday Problem
//     with Unequal Occurrence Probabilities and Their Application to
//     the Surname Problem in Japan". Annals of the Institute of
//     Statistical Mathematics. 44 (3): 479–499.
package birthday // import "github.com/aclements/go-birthday"

import (
	"errors"

	"github.com/aclements/go-birthday/partition"
	"gonum.org/v1/gonum/mat"
)

// A Method selects how CollisionProb computes the collision
// probability.
type Method int

//go:generate stringer -type=Method

const (
	// Exact computes the probability by inclusion-exclusion over
	// the integer partitions of n, using the reference recursive
	// enumerator.
	Exact Method = iota

	// ExactFast is Exact with the iterative enumeration backend.
	// The two methods compute the same probability from the same
	// partition set; they differ only in how the set is produced.
	ExactFast

	// MaseApprox computes the asymptotic approximation of Mase
	// (1992), which bypasses partition enumeration entirely.
	MaseApprox
)

// An Enumerator produces the integer partitions of n as a matrix with
// one row per partition in multiplicity form: column i counts the
// parts of size i+1, so each row t satisfies Σ (i+1)·t[i] = n. The
// matrix must have exactly n columns and one row per distinct
// partition of n.
type Enumerator func(n int) (*mat.Dense, error)

var (
	// ExactEnumerator is the Enumerator used by the Exact method.
	ExactEnumerator Enumerator = partition.Enumerate

	// FastEnumerator is the Enumerator used by the ExactFast
	// method. It can be replaced to substitute an accelerated
	// backend. CollisionProb rejects a backend that returns the
	// wrong number of columns; setting ValidatePartitions extends
	// the check to every row.
	FastEnumerator Enumerator = partition.EnumerateFast
)

// ExactEnumLimit is the number of draws beyond which CollisionProb
// attaches advice to an exact-method result recommending MaseApprox.
// The exact methods enumerate all p(n) integer partitions of n, and
// p(60) is already 966,467, each partition carrying 60 columns, so
// beyond this point enumeration time and memory rise steeply while
// the approximation error of MaseApprox is far below the rounding
// noise of the alternating exact sum. The advice is informational;
// the exact computation still runs.
var ExactEnumLimit = 60

// MinDrawsExactLimit is the largest draw count for which MinDraws
// refines its asymptotic bracket with exact probabilities. Refinement
// evaluates CollisionProb a handful of times near the answer, so the
// limit is set where a single exact evaluation is still cheap
// (p(40) = 37,338 partitions). Above it MinDraws trusts the
// asymptotic bracket, whose error is orders of magnitude smaller
// than a single step of n at that scale.
var MinDrawsExactLimit = 40

// ValidatePartitions makes CollisionProb check every row returned by
// an Enumerator against the partition invariant Σ (i+1)·t[i] = n,
// failing with ErrEnumerator on a violation. The built-in enumerators
// satisfy the invariant by construction, so the check is off by
// default; turn it on when developing a replacement backend.
var ValidatePartitions = false

var (
	// ErrDraws is returned when the number of draws is less than 1.
	ErrDraws = errors.New("number of draws must be at least 1")

	// ErrNoCategories is returned when the probability vector has
	// no positive entries.
	ErrNoCategories = errors.New("probability vector has no positive entries")

	// ErrMethod is returned when the requested Method is not one of
	// the defined values.
	ErrMethod = errors.New("unknown method")

	// ErrEnumerator is returned when an enumeration backend
	// violates the partition contract.
	ErrEnumerator = errors.New("enumerator violated the partition contract")

	// ErrTarget is returned by MinDraws when the target probability
	// is outside [0, 1].
	ErrTarget = errors.New("target probability must be in [0, 1]")
)
