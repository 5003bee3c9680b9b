// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"math"

	"github.com/rigidchain/ikanalytic/sym"
)

// conicSamples is how finely ConicAngles scans (-π,π] for sign changes
// before bisecting; spec's ConicRoots polynomials are at most degree 4 in
// (cosθ,sinθ) (Raghavan-Roth derived), so sampling every half degree
// comfortably brackets every root without missing closely-spaced pairs.
const conicSamples = 720

// conicBisectIters bounds the bisection refinement; each iteration halves
// the bracket, so 60 iterations already passes float64 precision.
const conicBisectIters = 60

// ConicAngles intersects poly(cos θ, sin θ) = 0 with the unit circle by
// sampling θ over (-π,π] and bisecting every bracketed sign change,
// rather than re-deriving poly as an explicit polynomial in tan(θ/2):
// spec §4.4 strategy 6 only commits to the conic shape, leaving its
// reduction to θ up to "the code generator" — sampling the parametrized
// circle directly sidesteps having to re-discover that reduction here.
// cosName/sinName select which symbols in poly are bound to cos θ/sin θ;
// base supplies every other symbol's value (pose entries, already-solved
// joints).
func ConicAngles(poly sym.Expr, cosName, sinName string, base map[string]float64) ([]float64, error) {
	f := func(theta float64) (float64, error) {
		vals := make(map[string]float64, len(base)+2)
		for k, v := range base {
			vals[k] = v
		}
		vals[cosName] = math.Cos(theta)
		vals[sinName] = math.Sin(theta)
		return sym.Eval(poly, vals)
	}

	lo := -math.Pi
	step := 2 * math.Pi / conicSamples
	prevTheta := lo
	prevVal, err := f(prevTheta)
	if err != nil {
		return nil, err
	}

	var roots []float64
	for i := 1; i <= conicSamples; i++ {
		theta := lo + float64(i)*step
		val, err := f(theta)
		if err != nil {
			return nil, err
		}
		switch {
		case val == 0:
			roots = append(roots, theta)
		case (prevVal < 0) != (val < 0):
			roots = append(roots, bisect(f, prevTheta, prevVal, theta, val))
		}
		prevTheta, prevVal = theta, val
	}
	return roots, nil
}

// bisect refines the sign-changing bracket (a,fa)-(b,fb) to a single
// root; on the rare evaluation error mid-bisection it stops and returns
// the current midpoint.
func bisect(f func(float64) (float64, error), a, fa, b, fb float64) float64 {
	for i := 0; i < conicBisectIters; i++ {
		mid := (a + b) / 2
		fm, err := f(mid)
		if err != nil {
			return mid
		}
		if (fm < 0) == (fa < 0) {
			a, fa = mid, fm
		} else {
			b, fb = mid, fm
		}
	}
	return (a + b) / 2
}
