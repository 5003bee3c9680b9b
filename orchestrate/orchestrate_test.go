// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/solvectx"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// Test_solve3dof_cartesian covers seed scenario 2 (spec §8): three
// orthogonal prismatics solved independently, one PureLinear *Single*
// leaf per joint chained in sequence.
func Test_solve3dof_cartesian(tst *testing.T) {

	chk.PrintTitle("solve3dofcartesian. three decoupled prismatic equations")

	v0, v1, v2 := sym.NewJointVar(0), sym.NewJointVar(1), sym.NewJointVar(2)
	e0, _ := sym.Parse(v0.ThetaName() + "-px")
	e1, _ := sym.Parse(v1.ThetaName() + "-py")
	e2, _ := sym.Parse(v2.ThetaName() + "-pz")

	ctx := solvectx.New(config.Default(), []*sym.JointVar{v0, v1, v2}, nil)
	root, err := Solve([]sym.Eq{e0, e1, e2}, ctx)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if _, ok := root.(*tree.Single); !ok {
		tst.Errorf("expected the first resolved joint to be a *tree.Single leaf, got %T\n", root)
	}
	chk.IntAssert(len(ctx.CurVars), 0)
	chk.IntAssert(len(ctx.SolvedVars), 3)
}

// Test_solve_freeparameter covers seed scenario 3's shape (spec §8): an
// equation bag with one variable fully unconstrained must still reach
// DONE by promoting it to a *tree.FreeParameter* rather than failing.
func Test_solve_freeparameter(tst *testing.T) {

	chk.PrintTitle("solvefreeparameter. one variable unconstrained by any equation")

	v0, v1 := sym.NewJointVar(0), sym.NewJointVar(1)
	e0, _ := sym.Parse(v0.ThetaName() + "-5")

	ctx := solvectx.New(config.Default(), []*sym.JointVar{v0, v1}, nil)
	_, err := Solve([]sym.Eq{e0}, ctx)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.IntAssert(len(ctx.CurVars), 0)
	chk.IntAssert(len(ctx.SolvedVars), 2)
}

// Test_solve_unsolvable ensures an equation bag that determines nothing
// at all and has no free fallback (budget already spent) is reported as
// *ikerrors.UnsolvableError, not silently accepted (spec §7).
func Test_solve_unsolvable(tst *testing.T) {

	chk.PrintTitle("solveunsolvable. no equation mentions the only unknown")

	v0 := sym.NewJointVar(0)
	e, _ := sym.Parse("px-py") // mentions neither j0, c0 nor s0
	th := config.Default()
	th.MaxDegenerateDepth = 0

	ctx := solvectx.New(th, []*sym.JointVar{v0}, nil)
	_, err := Solve([]sym.Eq{e}, ctx)
	if err == nil {
		tst.Errorf("expected an error, got a solution\n")
	}
}

// Test_degenerate_ledger_nodup exercises the ledger-dedup path inside
// handleDegenerateCases directly: adding the same case twice must not
// grow the ledger (spec §8 "never contains duplicate sets").
func Test_degenerate_ledger_nodup(tst *testing.T) {

	chk.PrintTitle("degenerateledgernodup. same vanishing condition found twice is deduped")

	v0 := sym.NewJointVar(0)
	ctx := solvectx.New(config.Default(), nil, nil)
	ctx.MarkSolved(v0, v0.Theta)

	guard := v0.Sin // vanishes at theta=0 and theta=pi
	cases := vanishingConditions(guard, ctx)
	if len(cases) == 0 {
		tst.Errorf("expected at least one vanishing condition\n")
		return
	}
	added := 0
	for i := 0; i < 2; i++ {
		for _, c := range cases {
			if ctx.Ledger.Add(c.ledgerCase) {
				added++
			}
		}
	}
	chk.IntAssert(added, len(cases))
}
