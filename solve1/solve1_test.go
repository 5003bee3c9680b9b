// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve1

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

func Test_purelinear01(tst *testing.T) {

	chk.PrintTitle("purelinear01. prismatic joint, theta = pz")

	v := sym.NewJointVar(0)
	// j0 - pz == 0
	e, err := sym.Parse(v.ThetaName() + "-pz")
	if err != nil {
		tst.Errorf("parse failed: %v\n", err)
		return
	}
	n, ok := PureLinear([]sym.Eq{e}, v)
	if !ok {
		tst.Errorf("expected PureLinear to fire\n")
		return
	}
	single, isSingle := n.(*tree.Single)
	if !isSingle {
		tst.Errorf("expected *tree.Single\n")
		return
	}
	chk.IntAssert(len(single.Exprs), 1)
}

func Test_twoeqlinearsc01(tst *testing.T) {

	chk.PrintTitle("twoeqlinearsc01. two (s,c)-linear equations")

	v := sym.NewJointVar(1)
	e0, _ := sym.Parse(v.CosName() + "-px")
	e1, _ := sym.Parse(v.SinName() + "-py")
	n, ok := TwoEquationLinearSC([]sym.Eq{e0, e1}, v)
	if !ok {
		tst.Errorf("expected TwoEquationLinearSC to fire\n")
		return
	}
	if _, isSingle := n.(*tree.Single); !isSingle {
		tst.Errorf("expected *tree.Single\n")
	}
}

func Test_solvestack01(tst *testing.T) {

	chk.PrintTitle("solvestack01. Solve falls through to the first working strategy")

	v := sym.NewJointVar(2)
	e, _ := sym.Parse(v.ThetaName() + "-7")
	_, ok := Solve([]sym.Eq{e}, v)
	if !ok {
		tst.Errorf("expected Solve to succeed via PureLinear\n")
	}
}
