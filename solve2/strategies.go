// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve2

import (
	"github.com/rigidchain/ikanalytic/chop"
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/solve1"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
	"zappem.net/math/algex/factor"
)

// pairSymbols are the six pairwise products spec §4.4 strategy 1 names.
func pairSymbols(v0, v1 *sym.JointVar) map[string]string {
	return map[string]string{
		v0.SinName() + "*" + v1.CosName(): "m_sc01",
		v0.SinName() + "*" + v1.SinName(): "m_ss01",
		v0.CosName() + "*" + v1.CosName(): "m_cc01",
		v0.CosName() + "*" + v1.SinName(): "m_cs01",
		v0.SinName() + "*" + v0.CosName(): "m_sc00",
		v1.SinName() + "*" + v1.CosName(): "m_sc11",
	}
}

// MonomialPairing is spec §4.4 strategy 1: substitute the six pairwise
// products as fresh symbols; keep only equations whose non-constant
// terms have monomial degree ≤ 2 in the fresh symbols and contain no
// "triple mixed" monomial (degree ≥3 product of distinct fresh symbols).
func MonomialPairing(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	pairs := pairSymbols(v0, v1)
	var kept []sym.Eq
	for _, e := range eqs {
		out := e
		for pattern, repl := range pairs {
			p, err := sym.ParseFactor(pattern)
			if err != nil {
				continue
			}
			out = out.Substitute(p, sym.Symbol(repl))
		}
		if monomialDegreeOK(out, pairs) {
			kept = append(kept, out)
		}
	}
	kept = chop.Unique(kept)
	if len(kept) < 2 {
		return nil, false
	}
	// A system reduced to fresh linear symbols is handed to the
	// single-variable machinery treating one fresh monomial as "theta",
	// mirroring spec's "solve the resulting linear-ish system".
	dummy := sym.NewJointVar(900)
	return solve1.Solve(kept, dummy)
}

func monomialDegreeOK(e sym.Expr, pairs map[string]string) bool {
	freshNames := make(map[string]bool, len(pairs))
	for _, n := range pairs {
		freshNames[n] = true
	}
	for _, t := range e.Terms() {
		deg := 0
		distinct := make(map[string]bool)
		for _, f := range t.Fact {
			name, exp := sym.FactorBase(f)
			if freshNames[name] {
				deg += exp
				distinct[name] = true
			}
		}
		if deg > 2 {
			return false
		}
		if len(distinct) >= 3 {
			return false
		}
	}
	return true
}

// ReductionLoop is spec §4.4 strategy 2: iteratively eliminate pairs of
// high-degree monomials by cross-multiplication, bounded by a complexity
// ceiling and a count bound, preserving uniqueness modulo sign.
func ReductionLoop(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	work := append([]sym.Eq(nil), eqs...)
	added := 0
	for i := 0; i < len(work) && added < th.PairwiseReductionCountBound; i++ {
		for j := i + 1; j < len(work) && added < th.PairwiseReductionCountBound; j++ {
			common, ok := sym.Common(work[i], work[j])
			if !ok {
				continue
			}
			inv := sym.Inv(common)
			reduced := sym.FromFactors(inv)
			cross := sym.Mul(work[i], reduced).Sub(sym.Mul(work[j], reduced))
			if sym.Complexity(cross) > th.PairwiseComplexityCeiling {
				continue
			}
			work = append(work, cross)
			added++
		}
	}
	work = chop.Unique(work)
	dummy := sym.NewJointVar(901)
	return solve1.Solve(work, dummy)
}

// Separation is spec §4.4 strategy 3: if the reduced system yields an
// equation linear in one variable's (c,s) pair alone, fall back to the
// single-variable solver for that variable.
func Separation(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	for _, v := range []*sym.JointVar{v0, v1} {
		other := v1
		if v == v1 {
			other = v0
		}
		var isolated []sym.Eq
		for _, e := range eqs {
			if sym.Mentions(e, other.CosName()) || sym.Mentions(e, other.SinName()) || sym.Mentions(e, other.ThetaName()) {
				continue
			}
			if sym.Mentions(e, v.CosName()) || sym.Mentions(e, v.SinName()) || sym.Mentions(e, v.ThetaName()) {
				isolated = append(isolated, e)
			}
		}
		if len(isolated) == 0 {
			continue
		}
		if n, ok := solve1.Solve(isolated, v); ok {
			return n, true
		}
	}
	return nil, false
}

// MagicSquare is spec §4.4 strategy 4 and the GLOSSARY entry of the same
// name: given two equations of the shape simple_i + complex_i = 0 where
// complex_i factors through a single monomial, form
// Σ(complex_i)² - Σ(simple_i)² = 0, reduce via c²+s²=1, solve the
// resulting univariate polynomial.
func MagicSquare(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	if len(eqs) < 2 {
		return nil, false
	}
	sumComplexSq := sym.Zero()
	sumSimpleSq := sym.Zero()
	found := false
	for _, e := range eqs[:2] {
		simple, complex := splitSimpleComplex(e, v1)
		sumSimpleSq = sumSimpleSq.Add(sym.Mul(simple, simple))
		sumComplexSq = sumComplexSq.Add(sym.Mul(complex, complex))
		found = true
	}
	if !found {
		return nil, false
	}
	combined := v1.InjectPythagorean(sumComplexSq.Sub(sumSimpleSq))
	coeffs, ok := polyCoeffsOf(combined, v1.CosName(), 4)
	if !ok || len(coeffs) == 0 {
		return nil, false
	}
	return &tree.PolynomialRoots{
		Var:            v1.ThetaName(),
		Dummy:          v1.CosName(),
		Poly:           coeffs,
		ThetaFromDummy: tree.Acos(tree.Atom(sym.Symbol(v1.CosName()))),
	}, true
}

// splitSimpleComplex separates e's terms into those that mention v's
// trig symbols (the "complex" part, per the magic-square identity's
// naming) and those that don't (the "simple" part).
func splitSimpleComplex(e sym.Expr, v *sym.JointVar) (simple, complex sym.Expr) {
	simple, complex = sym.Zero(), sym.Zero()
	for _, t := range e.Terms() {
		mentionsV := false
		for _, f := range t.Fact {
			name, _ := sym.FactorBase(f)
			if name == v.CosName() || name == v.SinName() {
				mentionsV = true
				break
			}
		}
		rebuilt := sym.FromFactors(append([]factor.Value{factor.R(t.Coeff)}, t.Fact...))
		if mentionsV {
			complex = complex.Add(rebuilt)
		} else {
			simple = simple.Add(rebuilt)
		}
	}
	return simple, complex
}

// polyCoeffsOf buckets e's additive terms by the power of symName each
// carries, parsed via sym.FactorBase (algex normalizes a repeated
// symbol into one exponent-bearing factor.Value, as in solve1),
// erroring if any term's degree exceeds maxDegree.
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
		coeffs[deg] = coeffs[deg].Add(sym.FromFactors(append([]factor.Value{factor.R(t.Coeff)}, remaining...)))
		seen = true
	}
	if !seen {
		return nil, false
	}
	return coeffs, true
}

// QuarticWeierstrass is spec §4.4 strategy 5: build a polynomial in
// u = tan(θ0/2) by substituting the half-angle forms of c0 and s0 into
// the first equation, taken as linear in (c0,s0), and clearing the
// shared denominator; a result of degree up to 4 in u is accepted. Only
// eqs[0] is used: no closed-form quartic elimination across several
// equations is carried out.
func QuarticWeierstrass(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	if !th.EnableQuarticFallback {
		return nil, false
	}
	if len(eqs) == 0 {
		return nil, false
	}
	u := sym.Symbol(v0.TanName() + "_half")
	cosNum, cosDen, sinNum, _ := sym.WeierstrassCosSin(u)
	cPattern, _ := sym.ParseFactor(v0.CosName())
	sPattern, _ := sym.ParseFactor(v0.SinName())
	// a*c0 + b*s0 + k times the shared denominator (1+u²) is
	// a*cosNum + b*sinNum + k*(1+u²): the numerators stand in for c0 and
	// s0, and only the constant part k picks up the extra u² term.
	k := eqs[0].Substitute(cPattern, sym.Zero()).Substitute(sPattern, sym.Zero())
	poly := eqs[0].Substitute(cPattern, cosNum).Substitute(sPattern, sinNum).Add(sym.Mul(k, cosDen.Sub(sym.One())))
	coeffs, ok := polyCoeffsOf(poly, v0.TanName()+"_half", 4)
	if !ok || len(coeffs) == 0 {
		return nil, false
	}
	return &tree.PolynomialRoots{
		Var:            v0.ThetaName(),
		Dummy:          v0.TanName() + "_half",
		Poly:           coeffs,
		ThetaFromDummy: tree.MulConst(tree.Atan(tree.Atom(u)), 2, 1),
		Checks:         tree.CheckList{PostcheckForZeros: []sym.Expr{coeffs[len(coeffs)-1]}},
	}, true
}

// ConicFallback is spec §4.4 strategy 6: when no simpler form exists,
// emit a ConicRoots with the remaining polynomial in (c,s), to be
// intersected with the unit circle downstream.
func ConicFallback(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	if len(eqs) == 0 {
		return nil, false
	}
	return &tree.ConicRoots{
		Var:  v1.ThetaName(),
		Poly: eqs[0],
	}, true
}
