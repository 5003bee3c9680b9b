// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

func Test_collect01(tst *testing.T) {

	chk.PrintTitle("collect01. Single(theta=atan2(py,px)) then StoreSolution")

	// j0 = atan2(py, px), single candidate, no checks
	leaf := &tree.Single{
		Var:  "j0",
		Kind: tree.SingleTheta,
		Exprs: []tree.Formula{
			tree.Atan2(tree.Atom(sym.Symbol("py")), tree.Atom(sym.Symbol("px"))),
		},
		Next: &tree.StoreSolution{},
	}
	c := &tree.Chain{Kind: tree.Translation3D, Root: leaf}

	base := map[string]float64{"px": 1, "py": 1}
	sols, err := CollectSolutions(c, base, config.Default())
	if err != nil {
		tst.Errorf("CollectSolutions failed: %v\n", err)
		return
	}
	chk.IntAssert(len(sols), 1)
	chk.AnaNum(tst, "j0", 1e-10, sols[0]["j0"], 0.7853981633974483, false)
}

func Test_collect02(tst *testing.T) {

	chk.PrintTitle("collect02. PolynomialRoots fans out over every real root")

	// (u-1)(u-2) = u^2 - 3u + 2 = 0, theta = 2*atan(u)
	poly := []sym.Expr{sym.Rational(2, 1), sym.Rational(-3, 1), sym.Rational(1, 1)}
	leaf := &tree.PolynomialRoots{
		Var:            "j0",
		Dummy:          "u",
		Poly:           poly,
		ThetaFromDummy: tree.MulConst(tree.Atom(sym.Symbol("u")), 2, 1),
		Next:           &tree.StoreSolution{},
	}
	c := &tree.Chain{Kind: tree.Translation3D, Root: leaf}

	sols, err := CollectSolutions(c, map[string]float64{}, config.Default())
	if err != nil {
		tst.Errorf("CollectSolutions failed: %v\n", err)
		return
	}
	chk.IntAssert(len(sols), 2)
	got := []float64{sols[0]["j0"], sols[1]["j0"]}
	sort.Float64s(got)
	chk.AnaNum(tst, "j0_lo", 1e-8, got[0], 2, false)
	chk.AnaNum(tst, "j0_hi", 1e-8, got[1], 4, false)
}

func Test_collect03(tst *testing.T) {

	chk.PrintTitle("collect03. BranchConds picks the first all-zero guard, else the fallback")

	zeroCase := &tree.SetJoint{Var: "j0", Value: 0, Next: &tree.StoreSolution{}}
	fallback := &tree.SetJoint{Var: "j0", Value: 1, Next: &tree.StoreSolution{}}
	root := &tree.BranchConds{
		Conds: []tree.CondBranch{
			{Conditions: []sym.Expr{sym.Symbol("px")}, Subtree: zeroCase},
			{Conditions: nil, Subtree: fallback},
		},
	}
	c := &tree.Chain{Kind: tree.Translation3D, Root: root}

	solsZero, err := CollectSolutions(c, map[string]float64{"px": 0}, config.Default())
	if err != nil {
		tst.Errorf("CollectSolutions failed: %v\n", err)
		return
	}
	chk.IntAssert(len(solsZero), 1)
	chk.AnaNum(tst, "j0 (px==0)", 1e-12, solsZero[0]["j0"], 0, false)

	solsFallback, err := CollectSolutions(c, map[string]float64{"px": 5}, config.Default())
	if err != nil {
		tst.Errorf("CollectSolutions failed: %v\n", err)
		return
	}
	chk.IntAssert(len(solsFallback), 1)
	chk.AnaNum(tst, "j0 (px!=0)", 1e-12, solsFallback[0]["j0"], 1, false)
}

func Test_collect04(tst *testing.T) {

	chk.PrintTitle("collect04. a failing PostcheckForZeros drops the branch entirely")

	leaf := &tree.Single{
		Var:  "j0",
		Kind: tree.SingleTheta,
		Exprs: []tree.Formula{
			tree.Div(tree.Atom(sym.Symbol("py")), tree.Atom(sym.Symbol("px"))),
		},
		// qz stands in for a divisor derived elsewhere in the chain; it
		// happens to be zero here, so the whole branch must be dropped
		// even though the Single's own division evaluates cleanly.
		Checks: tree.CheckList{PostcheckForZeros: []sym.Expr{sym.Symbol("qz")}},
		Next:   &tree.StoreSolution{},
	}
	c := &tree.Chain{Kind: tree.Translation3D, Root: leaf}

	sols, err := CollectSolutions(c, map[string]float64{"px": 5, "py": 1, "qz": 0}, config.Default())
	if err != nil {
		tst.Errorf("CollectSolutions failed: %v\n", err)
		return
	}
	chk.IntAssert(len(sols), 0)
}
