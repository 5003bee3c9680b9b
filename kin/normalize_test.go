// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/sym"
)

func Test_normalize01(tst *testing.T) {

	chk.PrintTitle("normalize01. identity coefficients pass through untouched")

	joints := twoHingeJoints()
	if err := NormalizeCoeffs(joints); err != nil {
		tst.Errorf("NormalizeCoeffs failed: %v\n", err)
	}
}

func Test_normalize02(tst *testing.T) {

	chk.PrintTitle("normalize02. prismatic scale coefficient is accepted")

	j := &Joint{ID: 0, Type: Prismatic, ParentLink: 0, ChildLink: 1, A: 2.5, B: 0.1, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Identity()}
	if err := NormalizeCoeffs([]*Joint{j}); err != nil {
		tst.Errorf("NormalizeCoeffs failed: %v\n", err)
	}
}

func Test_normalize03(tst *testing.T) {

	chk.PrintTitle("normalize03. non-identity offset on a hinge is rejected")

	j := &Joint{ID: 0, Type: Hinge, ParentLink: 0, ChildLink: 1, A: 1, B: 0.2, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Identity()}
	err := NormalizeCoeffs([]*Joint{j})
	if err == nil {
		tst.Errorf("expected an error for a non-identity hinge offset\n")
		return
	}
	if !ikerrors.IsInputError(err) {
		tst.Errorf("expected an InputError, got %T\n", err)
	}
}

func Test_normalize04(tst *testing.T) {

	chk.PrintTitle("normalize04. zero scale coefficient is rejected")

	j := &Joint{ID: 0, Type: Prismatic, ParentLink: 0, ChildLink: 1, A: 0, B: 0, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Identity()}
	err := NormalizeCoeffs([]*Joint{j})
	if err == nil {
		tst.Errorf("expected an error for a zero scale coefficient\n")
		return
	}
	if !ikerrors.IsInputError(err) {
		tst.Errorf("expected an InputError, got %T\n", err)
	}
}

func Test_normalize05(tst *testing.T) {

	chk.PrintTitle("normalize05. prismatic scale folds into the chain's joint transform")

	j := &Joint{ID: 0, Type: Prismatic, ParentLink: 0, ChildLink: 1, A: 2, B: 1, Role: RoleSolve,
		Left: sym.Identity(), Right: sym.Identity()}
	c, err := BuildChain([]*Joint{j}, 0, 1, true)
	if err != nil {
		tst.Errorf("BuildChain failed: %v\n", err)
		return
	}
	chk.IntAssert(len(c.Links), 1)
	jt, err := jointTransform(c.Links[0])
	if err != nil {
		tst.Errorf("jointTransform failed: %v\n", err)
		return
	}
	if jt.PosEntry(2).IsZero() {
		tst.Errorf("expected a non-trivial z translation folding a=2, b=1\n")
	}
}
