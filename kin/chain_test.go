// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/sym"
)

func twoHingeJoints() []*Joint {
	j0 := &Joint{ID: 0, Type: Hinge, ParentLink: 0, ChildLink: 1, A: 1, B: 0, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Translation(sym.Zero(), sym.Zero(), sym.Symbol("d1"))}
	j1 := &Joint{ID: 1, Type: Hinge, ParentLink: 1, ChildLink: 2, A: 1, B: 0, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Identity()}
	return []*Joint{j0, j1}
}

func Test_buildchain01(tst *testing.T) {

	chk.PrintTitle("buildchain01. two-hinge chain, no folding")

	c, err := BuildChain(twoHingeJoints(), 0, 2, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	chk.IntAssert(len(c.Links), 2)
	chk.IntAssert(len(c.SolveVars), 2)
	chk.IntAssert(len(c.FreeVars), 0)
	chk.Strings(tst, "solve var names",
		[]string{c.SolveVars[0].ThetaName(), c.SolveVars[1].ThetaName()},
		[]string{"j0", "j1"})
}

func Test_buildchain02(tst *testing.T) {

	chk.PrintTitle("buildchain02. dummy joint folds into neighbour")

	joints := twoHingeJoints()
	dummy := &Joint{ID: 2, Type: Hinge, ParentLink: 2, ChildLink: 3, Role: RoleDummy,
		Left: sym.Identity(), Right: sym.Translation(sym.Zero(), sym.Zero(), sym.Symbol("dtip"))}
	joints = append(joints, dummy)

	c, err := BuildChain(joints, 0, 3, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	chk.IntAssert(len(c.Links), 2)
	chk.IntAssert(len(c.SolveVars), 2)
}

func Test_accumulators01(tst *testing.T) {

	chk.PrintTitle("accumulators01. left/right products build without error")

	c, err := BuildChain(twoHingeJoints(), 0, 2, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	acc, err := BuildAccumulators(c, config.Default())
	if err != nil {
		tst.Errorf("BuildAccumulators failed: %v\n", err)
		return
	}
	chk.IntAssert(len(acc.LeftAll), 2)
	chk.IntAssert(len(acc.RightAll), 2)
	if acc.LeftAll[0].RotEntry(0, 0).IsZero() && acc.LeftAll[0].RotEntry(1, 1).IsZero() {
		tst.Errorf("unexpected zeroed rotation block after one hinge\n")
	}
}

func Test_rebalance01(tst *testing.T) {

	chk.PrintTitle("rebalance01. trailing translation folds into last solve joint")

	joints := twoHingeJoints()
	tipLink := &Joint{ID: 2, Type: Hinge, ParentLink: 2, ChildLink: 3, Role: RoleFree,
		Left: sym.Identity(), Right: sym.Translation(sym.Zero(), sym.Zero(), sym.Symbol("dtip"))}
	joints = append(joints, tipLink)

	c, err := BuildChain(joints, 0, 3, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	nLinksBefore := len(c.Links)
	fired := PushTranslationRight(c)
	if !fired {
		tst.Errorf("expected PushTranslationRight to fire\n")
	}
	if len(c.Links) != nLinksBefore-1 {
		tst.Errorf("expected free tail link to be absorbed, got %d links (was %d)\n", len(c.Links), nLinksBefore)
	}
}
