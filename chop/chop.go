// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chop implements the threshold-based zeroing and
// equation-uniqueness utilities of spec.md §3/§9 (5% share): a
// single-pass expression walker that rounds near-zero rational
// coefficients to zero, and a modulo-sign uniqueness test used
// throughout eqn and orchestrate to keep equation bags small.
package chop

import (
	"math"
	"sort"

	"github.com/rigidchain/ikanalytic/sym"
	"zappem.net/math/algex/factor"
)

// Expr chops every term of e whose coefficient has magnitude below
// accuracy, zeroing it. Preserves structural identity
// (chop(a+b) = chop(a)+chop(b)) because it operates term-by-term on the
// already-expanded additive form, per spec §9.
func Expr(e sym.Expr, accuracy float64) sym.Expr {
	out := sym.Zero()
	for _, t := range e.Terms() {
		f, _ := t.Coeff.Float64()
		if math.Abs(f) < accuracy {
			continue
		}
		fs := append([]factor.Value{factor.R(t.Coeff)}, t.Fact...)
		out = out.Add(sym.FromFactors(fs))
	}
	return out
}

// Matrix chops every entry of a 2D grid of expressions; used for the
// LeftAll/LeftInvAll/RightAll transform accumulators (spec §3), which
// are each chopped before being consumed by the equation generator.
func Matrix(m [][]sym.Expr, accuracy float64) [][]sym.Expr {
	out := make([][]sym.Expr, len(m))
	for i, row := range m {
		out[i] = make([]sym.Expr, len(row))
		for j, e := range row {
			out[i][j] = Expr(e, accuracy)
		}
	}
	return out
}

// Unique filters a slice of "expression meant to equal zero" equations,
// dropping later duplicates that are identical modulo an overall sign
// flip (spec §3 "Equation" / §4.2 "filtered for uniqueness modulo
// sign"). Order of first occurrence is preserved.
func Unique(eqs []sym.Expr) []sym.Expr {
	seen := make(map[string]bool, len(eqs))
	out := make([]sym.Expr, 0, len(eqs))
	for _, e := range eqs {
		if e.IsZero() {
			continue
		}
		key := canonicalSignKey(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// canonicalSignKey returns a string identical for e and for -e, by
// picking whichever of the two string renderings sorts first. This is a
// cheap proxy for "equal modulo sign": it is exact for the common case
// where algex's canonical term ordering makes -e's rendering the
// literal negation of e's, which holds for every equation shape the
// equation generator produces (sums of monomials with rational
// coefficients).
func canonicalSignKey(e sym.Expr) string {
	a := e.String()
	b := e.Neg().String()
	keys := []string{a, b}
	sort.Strings(keys)
	return keys[0]
}
