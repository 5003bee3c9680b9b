// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the tunable thresholds used across the solver
// pipeline: chop accuracy, complexity ceilings, recursion depth and the
// per-problem time budget. None of these are hard-coded constants inside
// the solver packages; every caller may override them through a
// *Thresholds value threaded from ikinp/ik down to orchestrate.
package config

import (
	"math"
	"time"
)

// Thresholds bundles the numeric knobs referenced throughout spec.md §9.
// Zero value is invalid; use Default() to get gofem-style sane defaults.
type Thresholds struct {

	// ChopAccuracy is the default accuracy used to zero near-zero
	// floats inside expressions (spec §9 "Floating-point chop").
	ChopAccuracy float64

	// ChopAccuracyRotation relaxes ChopAccuracy for rotation matrix
	// entries, which accumulate more rounding noise.
	ChopAccuracyRotation float64

	// ChopReductionPower raises ChopAccuracy to this power during
	// reduction steps, relaxing the threshold further; must lie in
	// [1.2, 1.4] per spec §9.
	ChopReductionPower float64

	// EquationComplexityBudget is the node-count ceiling below which
	// an equation is eagerly trig-simplified (spec §4.2).
	EquationComplexityBudget int

	// PairwiseComplexityCeiling bounds the complexity of a reduced
	// pairwise equation (spec §4.4 step 2), default 50.
	PairwiseComplexityCeiling int

	// PairwiseReductionCountBound caps the number of new equations a
	// pairwise reduction loop may introduce (spec §4.4 step 2).
	PairwiseReductionCountBound int

	// MaxDegenerateDepth caps recursion into degenerate-case branches
	// (spec §4.6, §8); 4 levels halts further specialisation.
	MaxDegenerateDepth int

	// InvalidMagnitude is the magnitude above which an expression's
	// numeric evaluation is treated as invalid (spec §4.3, §7).
	InvalidMagnitude float64

	// EnableQuarticFallback gates the half-angle quartic closed-form
	// expansion in solve2 (spec §9 open question); kept on by default
	// because seed scenario 6 needs it.
	EnableQuarticFallback bool

	// PerProblemBudget bounds wall-clock time spent deriving one IK
	// chain; checked at every orchestrate scoring step (spec §5).
	PerProblemBudget time.Duration
}

// Default returns the thresholds used by the reference pipeline.
func Default() *Thresholds {
	return &Thresholds{
		ChopAccuracy:                1e-12,
		ChopAccuracyRotation:        1e-11,
		ChopReductionPower:          1.3,
		EquationComplexityBudget:    1500,
		PairwiseComplexityCeiling:   50,
		PairwiseReductionCountBound: 20,
		MaxDegenerateDepth:          4,
		InvalidMagnitude:            1e20,
		EnableQuarticFallback:       true,
		PerProblemBudget:            2 * time.Minute,
	}
}

// ReductionAccuracy returns ChopAccuracy raised to ChopReductionPower,
// the relaxed threshold spec §9 prescribes for reduction steps.
func (t *Thresholds) ReductionAccuracy() float64 {
	return math.Pow(t.ChopAccuracy, t.ChopReductionPower)
}
