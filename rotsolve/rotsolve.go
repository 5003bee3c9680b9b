// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rotsolve is the rotation solver (spec.md §4.5, 10% share):
// decomposes a symbolic 3x3 rotation equality R(θ_solve) = R_ee into
// standalone-variable and quotient-variable solutions, recursing until
// every unknown is resolved or a free parameter must be chosen.
// Grounded the same way solve1/solve2 are (gofem's try-in-order
// strategy-table idiom), here applied to matrix-entry equations instead
// of a flat equation bag.
package rotsolve

import (
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
	"zappem.net/math/algex/factor"
)

// Solve recurses over unknowns, each call scanning eqs (the nine
// rotation-entry equalities) for a standalone or quotient solution for
// one of them, substituting it in and recursing on the rest (spec §4.5
// "Recurse, substituting each solved variable and re-scanning").
func Solve(eqs []sym.Eq, unknowns []*sym.JointVar) (tree.Node, bool) {
	if len(unknowns) == 0 {
		return &tree.StoreSolution{}, true
	}
	for idx, v := range unknowns {
		if n, ok := standaloneScan(eqs, v); ok {
			rest := dropAt(unknowns, idx)
			n = chainNext(n, eqs, rest)
			return n, true
		}
	}
	for idx, v := range unknowns {
		if n, ok := quotientScan(eqs, v, unknowns); ok {
			rest := dropAt(unknowns, idx)
			n = chainNext(n, eqs, rest)
			return n, true
		}
	}
	// Check-zero variables: only one of {s,c} determined — emit a Branch
	// enumerating the zero and non-zero cases (spec §4.5 third bullet).
	for _, v := range unknowns {
		if n, ok := checkZeroBranch(eqs, v, unknowns); ok {
			return n, true
		}
	}
	return nil, false
}

// chainNext wires n's tail (whichever field holds "what happens next")
// to the recursive solve over the remaining unknowns, threading through
// the tagged-union's per-variant Next field.
func chainNext(n tree.Node, eqs []sym.Eq, rest []*sym.JointVar) tree.Node {
	nextNode, ok := Solve(eqs, rest)
	if !ok {
		nextNode = &tree.Break{}
	}
	switch t := n.(type) {
	case *tree.Single:
		t.Next = nextNode
		return t
	case *tree.PolynomialRoots:
		t.Next = nextNode
		return t
	}
	return n
}

func dropAt(vs []*sym.JointVar, idx int) []*sym.JointVar {
	out := make([]*sym.JointVar, 0, len(vs)-1)
	for i, v := range vs {
		if i != idx {
			out = append(out, v)
		}
	}
	return out
}

// standaloneScan finds a matrix entry that depends on v alone (no other
// unknown), then extracts either a·cos+b·sin+c=known form or a 2-of-(s,c)
// linear system, yielding θ = atan2(...) (spec §4.5 first bullet).
func standaloneScan(eqs []sym.Eq, v *sym.JointVar) (tree.Node, bool) {
	var isolated []sym.Eq
	for _, e := range eqs {
		if !sym.Mentions(e, v.CosName()) && !sym.Mentions(e, v.SinName()) && !sym.Mentions(e, v.ThetaName()) {
			continue
		}
		isolated = append(isolated, e)
	}
	if len(isolated) == 0 {
		return nil, false
	}
	e := v.InjectPythagorean(isolated[0])
	cCoeff, rem, ok1 := linearCoeffOf(e, v.CosName())
	if !ok1 {
		return nil, false
	}
	sCoeff, k, ok2 := linearCoeffOf(rem, v.SinName())
	if !ok2 || (cCoeff.IsZero() && sCoeff.IsZero()) {
		return nil, false
	}
	_ = k // the constant residue is folded into the equation upstream (InjectPythagorean), not the angle
	return &tree.Single{
		Var:    v.ThetaName(),
		Kind:   tree.SingleTheta,
		Exprs:  []tree.Formula{tree.Atan2(tree.Atom(sCoeff.Neg()), tree.Atom(cCoeff.Neg()))},
		Checks: tree.CheckList{},
	}, true
}

// quotientScan finds a pair of matrix entries whose ratio depends on v
// alone: num = a*s+b*c, den = c*s+d*c sharing the same linear structure,
// yielding θ = atan2(num, den) with den as a divide-by-zero guard (spec
// §4.5 second bullet).
func quotientScan(eqs []sym.Eq, v *sym.JointVar, unknowns []*sym.JointVar) (tree.Node, bool) {
	var num, den sym.Eq
	found := 0
	for _, e := range eqs {
		if !mentionsOnlyV(e, v, unknowns) {
			continue
		}
		sc, _, ok := linearCoeffOf(e, v.SinName())
		if !ok || sc.IsZero() {
			continue
		}
		switch found {
		case 0:
			num = e
			found++
		case 1:
			den = e
			found++
		}
	}
	if found < 2 {
		return nil, false
	}
	return &tree.Single{
		Var:   v.ThetaName(),
		Kind:  tree.SingleTheta,
		Exprs: []tree.Formula{tree.Atan2(tree.Atom(num), tree.Atom(den))},
		Checks: tree.CheckList{
			PostcheckForZeros: []sym.Expr{den},
		},
	}, true
}

// mentionsOnlyV reports whether e depends on v's trig symbols and on no
// other unknown's.
func mentionsOnlyV(e sym.Eq, v *sym.JointVar, unknowns []*sym.JointVar) bool {
	mentionsV := sym.Mentions(e, v.CosName()) || sym.Mentions(e, v.SinName()) || sym.Mentions(e, v.ThetaName())
	if !mentionsV {
		return false
	}
	for _, other := range unknowns {
		if other == v {
			continue
		}
		if sym.Mentions(e, other.CosName()) || sym.Mentions(e, other.SinName()) || sym.Mentions(e, other.ThetaName()) {
			return false
		}
	}
	return true
}

// checkZeroBranch handles the case where only one of {s,c} for v is
// determined by eqs: emit a Branch enumerating the zero and non-zero
// case of the undetermined one, using asin/acos as appropriate (spec
// §4.5 third bullet).
func checkZeroBranch(eqs []sym.Eq, v *sym.JointVar, unknowns []*sym.JointVar) (tree.Node, bool) {
	var cExpr, sExpr sym.Eq
	haveC, haveS := false, false
	for _, e := range eqs {
		if !mentionsOnlyV(e, v, unknowns) {
			continue
		}
		cc, rem, ok := linearCoeffOf(e, v.CosName())
		if ok && !cc.IsZero() && !haveC {
			cExpr = rem.Neg()
			haveC = true
			continue
		}
		sc, srem, ok2 := linearCoeffOf(e, v.SinName())
		if ok2 && !sc.IsZero() && !haveS {
			sExpr = srem.Neg()
			haveS = true
		}
	}
	if haveC == haveS {
		// either both known (handled by standaloneScan already) or
		// neither known: checkZeroBranch only applies to the exactly-one case.
		return nil, false
	}
	rest := removeVar(unknowns, v)
	tailOK, ok := Solve(eqs, rest)
	if !ok {
		tailOK = &tree.Break{}
	}
	zeroCase := &tree.Single{Var: v.ThetaName(), Kind: tree.SingleTheta, Next: tailOK}
	nonzeroCase := &tree.Single{Var: v.ThetaName(), Kind: tree.SingleTheta, Next: tailOK}
	if haveC {
		zeroCase.Exprs = []tree.Formula{tree.Atom(sym.Zero())}
		nonzeroCase.Exprs = []tree.Formula{tree.Acos(tree.Atom(cExpr))}
		return &tree.Branch{
			On: cExpr,
			Cases: map[string]tree.Node{
				"zero":    zeroCase,
				"nonzero": nonzeroCase,
			},
		}, true
	}
	zeroCase.Exprs = []tree.Formula{tree.Atom(sym.Zero())}
	nonzeroCase.Exprs = []tree.Formula{tree.Asin(tree.Atom(sExpr))}
	return &tree.Branch{
		On: sExpr,
		Cases: map[string]tree.Node{
			"zero":    zeroCase,
			"nonzero": nonzeroCase,
		},
	}, true
}

func removeVar(vs []*sym.JointVar, target *sym.JointVar) []*sym.JointVar {
	out := make([]*sym.JointVar, 0, len(vs)-1)
	for _, v := range vs {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

// linearCoeffOf extracts (a, b) such that e == a*symName + b (local copy
// of solve1's helper; kept unexported here too since rotsolve operates
// on matrix-entry equations rather than the flat equation bag solve1
// sees, per spec §4.5's separate scan design).
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
		coeff := sym.FromFactors(append([]factor.Value{factor.R(t.Coeff)}, remaining...))
		if deg == 1 {
			a = a.Add(coeff)
		} else {
			b = b.Add(coeff)
		}
	}
	return a, b, true
}
