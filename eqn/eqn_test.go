// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
)

func Test_raghavanroth01(tst *testing.T) {

	chk.PrintTitle("raghavanroth01. fourteen equations, both frames unit axes")

	a := Frame{
		L: Vec3{sym.Zero(), sym.Zero(), sym.One()},
		P: Vec3{sym.Symbol("ax"), sym.Symbol("ay"), sym.Symbol("az")},
	}
	b := Frame{
		L: Vec3{sym.One(), sym.Zero(), sym.Zero()},
		P: Vec3{sym.Symbol("bx"), sym.Symbol("by"), sym.Symbol("bz")},
	}
	eqs := RaghavanRoth(a, b)
	chk.IntAssert(len(eqs), 14)
}

func Test_positioneqs01(tst *testing.T) {

	chk.PrintTitle("positioneqs01. position equations build without error")

	joints := []*kin.Joint{
		{ID: 0, Type: kin.Hinge, ParentLink: 0, ChildLink: 1, A: 1, B: 0, Role: kin.RoleSolve,
			Left: sym.Identity(), Right: sym.Translation(sym.Zero(), sym.Zero(), sym.Symbol("d1"))},
	}
	c, err := kin.BuildChain(joints, 0, 1, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	th := config.Default()
	acc, err := kin.BuildAccumulators(c, th)
	if err != nil {
		tst.Errorf("BuildAccumulators failed: %v\n", err)
		return
	}
	ee := [3]sym.Expr{sym.Symbol("px"), sym.Symbol("py"), sym.Symbol("pz")}
	eqs := PositionEquations(acc, 0, ee, th)
	if len(eqs) == 0 {
		tst.Errorf("expected at least one position equation\n")
	}
}
