// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve1

import (
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// PureLinear is spec §4.3 strategy 1: an equation linear in θ with no
// sin/cos terms ⇒ direct inversion, θ = -b/a. Matches prismatic joints
// and any hinge equation algex's trig simplification has already fully
// resolved to a bare theta symbol (rare, but cheap to try first).
func PureLinear(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	for _, e := range eqs {
		if sym.Mentions(e, v.CosName()) || sym.Mentions(e, v.SinName()) {
			continue
		}
		a, b, ok := linearCoeffOf(e, v.ThetaName())
		if !ok || a.IsZero() {
			continue
		}
		return &tree.Single{
			Var:    v.ThetaName(),
			Kind:   tree.SingleTheta,
			Exprs:  []tree.Formula{tree.Div(tree.FormNeg(tree.Atom(b)), tree.Atom(a))},
			Checks: tree.CheckList{PostcheckForZeros: []sym.Expr{a}},
		}, true
	}
	return nil, false
}

// TwoEquationLinearSC is spec §4.3 strategy 2: given two equations each
// linear in (s,c) = (sinθ,cosθ), solve the 2x2 system via Cramer's rule
// and recover θ = atan2(s,c).
func TwoEquationLinearSC(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	type row struct{ ac, as, k sym.Expr }
	var rows []row
	for _, e := range eqs {
		ac, rem1, ok1 := linearCoeffOf(e, v.CosName())
		if !ok1 {
			continue
		}
		as, k, ok2 := linearCoeffOf(rem1, v.SinName())
		if !ok2 {
			continue
		}
		if ac.IsZero() && as.IsZero() {
			continue
		}
		rows = append(rows, row{ac: ac, as: as, k: k})
	}
	if len(rows) < 2 {
		return nil, false
	}
	r0, r1 := rows[0], rows[1]
	det := sym.Mul(r0.ac, r1.as).Sub(sym.Mul(r0.as, r1.ac))
	if det.IsZero() {
		return nil, false
	}
	// Cramer's rule for (c,s) solving {ac*c + as*s = -k}
	negK0, negK1 := r0.k.Neg(), r1.k.Neg()
	cNum := sym.Mul(negK0, r1.as).Sub(sym.Mul(r0.as, negK1))
	sNum := sym.Mul(r0.ac, negK1).Sub(sym.Mul(negK0, r1.ac))
	// c = cNum/det, s = sNum/det; scaling both by det² > 0 instead leaves
	// atan2 unchanged whatever the sign of det
	cScaled, sScaled := sym.Mul(cNum, det), sym.Mul(sNum, det)

	return &tree.Single{
		Var:    v.ThetaName(),
		Kind:   tree.SingleTheta,
		Exprs:  []tree.Formula{tree.Atan2(tree.Atom(sScaled), tree.Atom(cScaled))},
		Checks: tree.CheckList{PostcheckForZeros: []sym.Expr{det}},
	}, true
}

// LinearCombo is spec §4.3 strategy 3: a*cosθ + b*sinθ + c = 0 ⇒
// θ = -atan2(a,b) + asin(-c/sqrt(a²+b²)), plus the supplementary
// solution -atan2(a,b) + π - asin(-c/sqrt(a²+b²)).
func LinearCombo(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	for _, e := range eqs {
		a, rem, ok1 := linearCoeffOf(e, v.CosName())
		if !ok1 || a.IsZero() {
			continue
		}
		b, c, ok2 := linearCoeffOf(rem, v.SinName())
		if !ok2 || b.IsZero() {
			continue
		}
		magSq := sym.Mul(a, a).Add(sym.Mul(b, b))
		ratio := tree.Div(tree.FormNeg(tree.Atom(c)), tree.Sqrt(tree.Atom(magSq)))
		base := tree.FormNeg(tree.Atan2(tree.Atom(a), tree.Atom(b)))
		asinPart := tree.Asin(ratio)
		principal := tree.FormAdd(base, asinPart)
		supplementary := tree.FormAdd(base, tree.FormSub(tree.Atom(sym.Symbol("pi")), asinPart))
		return &tree.Single{
			Var:    v.ThetaName(),
			Kind:   tree.SingleTheta,
			Exprs:  []tree.Formula{principal, supplementary},
			Checks: tree.CheckList{PostcheckForRange: []sym.Expr{magSq}},
		}, true
	}
	return nil, false
}

// PolyInCosOrSin is spec §4.3 strategy 4, for equations polynomial in
// cos θ alone: anything of degree > 2 is rejected (the caller retries
// with half-angle instead), and a quadratic a*c² + b*c + k = 0 is solved
// with the closed-form quadratic formula, each root wrapped in acos.
// Equations that mention sin θ are skipped; no s = sqrt(1-c²)
// substitution is made, and sin-only polynomials are not handled here.
func PolyInCosOrSin(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	for _, e := range eqs {
		if sym.Mentions(e, v.SinName()) {
			continue // strategy only handles the pure-cos shape here
		}
		coeffs, ok := polyCoeffsOf(e, v.CosName(), 2)
		if !ok || len(coeffs) == 0 {
			continue
		}
		a, b, k := sym.Zero(), sym.Zero(), sym.Zero()
		if len(coeffs) > 0 {
			k = coeffs[0]
		}
		if len(coeffs) > 1 {
			b = coeffs[1]
		}
		if len(coeffs) > 2 {
			a = coeffs[2]
		}
		if a.IsZero() {
			if b.IsZero() {
				continue
			}
			c0 := tree.Div(tree.FormNeg(tree.Atom(k)), tree.Atom(b))
			return &tree.Single{
				Var:    v.ThetaName(),
				Kind:   tree.SingleTheta,
				Exprs:  []tree.Formula{tree.Acos(c0)},
				Checks: tree.CheckList{PostcheckForZeros: []sym.Expr{b}, PostcheckForRange: []sym.Expr{k.Neg()}},
			}, true
		}
		disc := sym.Mul(b, b).Sub(sym.Mul(sym.Rational(4, 1), sym.Mul(a, k)))
		sq := tree.Sqrt(tree.Atom(disc))
		twoA := tree.MulConst(tree.Atom(a), 2, 1)
		root1 := tree.Div(tree.FormSub(tree.FormNeg(tree.Atom(b)), sq), twoA)
		root2 := tree.Div(tree.FormAdd(tree.FormNeg(tree.Atom(b)), sq), twoA)
		return &tree.Single{
			Var:  v.ThetaName(),
			Kind: tree.SingleTheta,
			Exprs: []tree.Formula{
				tree.Acos(root1),
				tree.Acos(root2),
			},
			Checks: tree.CheckList{
				PostcheckForZeros: []sym.Expr{a},
				PostcheckForRange: []sym.Expr{disc},
			},
		}, true
	}
	return nil, false
}

// HalfAngleWeierstrass is spec §4.3 strategy 5: u = tan(θ/2), c =
// (1-u²)/(1+u²), s = 2u/(1+u²) turns the equation into a polynomial in
// u; emitted as a *PolynomialRoots* with θ = 2*atan(u).
func HalfAngleWeierstrass(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	if len(eqs) == 0 {
		return nil, false
	}
	u := sym.Symbol(v.TanName() + "_half")
	cosNum, cosDen, sinNum, sinDen := sym.WeierstrassCosSin(u)

	poly := substituteCosSinWithWeierstrass(eqs[0], v, cosNum, cosDen, sinNum, sinDen)

	coeffs, ok := polyCoeffsOf(poly, v.TanName()+"_half", 4)
	if !ok || len(coeffs) == 0 {
		return nil, false
	}
	return &tree.PolynomialRoots{
		Var:            v.ThetaName(),
		Dummy:          v.TanName() + "_half",
		Poly:           coeffs,
		ThetaFromDummy: tree.MulConst(tree.Atan(tree.Atom(u)), 2, 1),
	}, true
}

// substituteCosSinWithWeierstrass replaces cos/sin occurrences with
// their rational Weierstrass forms and clears the shared denominator
// (1+u²) by multiplying through once: a*c + b*s + k becomes
// a*cosNum + b*sinNum + k*(1+u²). This is sound for equations reaching
// this strategy, since every term here has at most one cos/sin factor
// (the higher-degree shapes were already consumed by the lower-numbered
// strategies earlier in the stack); an equation not linear in cos and
// sin yields zero, so no polynomial is produced for it.
func substituteCosSinWithWeierstrass(e sym.Expr, v *sym.JointVar, cosNum, cosDen, sinNum, sinDen sym.Expr) sym.Expr {
	a, rem, ok1 := linearCoeffOf(e, v.CosName())
	b, k, ok2 := linearCoeffOf(rem, v.SinName())
	if !ok1 || !ok2 {
		return sym.Zero()
	}
	return sym.Mul(a, cosNum).Add(sym.Mul(b, sinNum)).Add(sym.Mul(k, cosDen))
}
