// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve1 is the single-variable solver (spec.md §4.3, 15%
// share): given a bag of equations referencing only one unknown θ (free
// and previously-solved variables treated as constants), it tries a
// fixed stack of algebraic strategies, in order, and returns the first
// success. Grounded on gofem's ele packages' strategy-table pattern
// (e.g. mreten's multiple retention-model implementations selected by a
// factory key): here the "key" is a fixed try-in-order stack rather than
// a name lookup, matching spec.md's "first success that yields a valid
// result wins".
package solve1

import (
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
	"zappem.net/math/algex/factor"
)

// Strategy is one entry of the §4.3 stack. eqs are equations already
// filtered to mention only v (and constants); it returns the resulting
// leaf node and whether it fired.
type Strategy func(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool)

// Strategies is the fixed try-in-order stack spec §4.3 lists.
var Strategies = []Strategy{
	PureLinear,
	TwoEquationLinearSC,
	LinearCombo,
	PolyInCosOrSin,
	HalfAngleWeierstrass,
}

// Solve tries each strategy in order, skipping any whose result carries
// an invalid coefficient (NaN/Inf/imaginary-unit, spec §4.3 last line),
// and returns the first valid success.
func Solve(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	for _, s := range Strategies {
		n, ok := s(eqs, v)
		if !ok {
			continue
		}
		if leafIsInvalid(n) {
			continue
		}
		return n, true
	}
	return nil, false
}

func leafIsInvalid(n tree.Node) bool {
	if pr, ok := n.(*tree.PolynomialRoots); ok {
		for _, c := range pr.Poly {
			if sym.IsInvalid(c) {
				return true
			}
		}
	}
	return false
}

// linearCoeffOf extracts (a, b) such that e == a*symName + b, treating
// every other symbol as a constant folded into a or b. ok is false if
// symName's total exponent in any single additive term exceeds one
// (i.e. e is not linear in it).
func linearCoeffOf(e sym.Expr, symName string) (a, b sym.Expr, ok bool) {
	a, b = sym.Zero(), sym.Zero()
	for _, t := range e.Terms() {
		deg := 0
		remaining := make([]factor.Value, 0, len(t.Fact))
		for _, f := range t.Fact {
			name, exp := sym.FactorBase(f)
			if name != symName {
				remaining = append(remaining, f)
				continue
			}
			deg += exp
		}
		if deg > 1 {
			return sym.Zero(), sym.Zero(), false
		}
		coeffFacts := append([]factor.Value{factor.R(t.Coeff)}, remaining...)
		coeff := sym.FromFactors(coeffFacts)
		if deg == 1 {
			a = a.Add(coeff)
		} else {
			b = b.Add(coeff)
		}
	}
	return a, b, true
}

// polyCoeffsOf buckets e's additive terms by the power of symName each
// carries — a factor's exponent is parsed via sym.FactorBase, since
// algex normalizes a repeated symbol into one exponent-bearing
// factor.Value rather than repeating it in Term.Fact — returning
// coefficients indexed by ascending degree. ok is false if any term's
// degree exceeds maxDegree.
func polyCoeffsOf(e sym.Expr, symName string, maxDegree int) ([]sym.Expr, bool) {
	coeffs := make([]sym.Expr, maxDegree+1)
	for i := range coeffs {
		coeffs[i] = sym.Zero()
	}
	seen := false
	for _, t := range e.Terms() {
		deg := 0
		remaining := make([]factor.Value, 0, len(t.Fact))
		for _, f := range t.Fact {
			name, exp := sym.FactorBase(f)
			if name == symName {
				deg += exp
				continue
			}
			remaining = append(remaining, f)
		}
		if deg > maxDegree {
			return nil, false
		}
		coeffFacts := append([]factor.Value{factor.R(t.Coeff)}, remaining...)
		coeffs[deg] = coeffs[deg].Add(sym.FromFactors(coeffFacts))
		seen = true
	}
	if !seen {
		return nil, false
	}
	return coeffs, true
}
