// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ik

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

func threePrismaticJoints() []*kin.Joint {
	var joints []*kin.Joint
	for i := 0; i < 3; i++ {
		joints = append(joints, &kin.Joint{
			ID: i, Type: kin.Prismatic, ParentLink: i, ChildLink: i + 1,
			A: 1, B: 0, Role: kin.RoleSolve,
			Left: sym.Identity(), Right: sym.Identity(),
		})
	}
	return joints
}

// Test_solve_translation3d covers seed scenario 2's request shape (spec
// §8): three prismatic joints, IK kind Translation3D, must reach DONE
// without error.
func Test_solve_translation3d(tst *testing.T) {

	chk.PrintTitle("solvetranslation3d. three prismatic joints, Translation3D kind")

	joints := threePrismaticJoints()
	req := Request{BaseLink: 0, EndEffectorLink: 3, UseDummyJoints: true, Kind: tree.Translation3D}

	root, err := Solve(joints, req, DefaultPose(), config.Default())
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if root == nil {
		tst.Errorf("expected a non-nil *tree.Chain\n")
		return
	}
	chk.IntAssert(int(root.Kind), int(tree.Translation3D))
}

// Test_solve_wrong_jointcount ensures a joint-count/kind mismatch is
// reported as *ikerrors.InputError before any solving is attempted
// (spec §6 "The number of joints-to-solve must match the kind").
func Test_solve_wrong_jointcount(tst *testing.T) {

	chk.PrintTitle("solvewrongjointcount. two solve joints declared for Translation3D (needs 3)")

	joints := threePrismaticJoints()[:2]
	req := Request{BaseLink: 0, EndEffectorLink: 2, UseDummyJoints: true, Kind: tree.Translation3D}

	_, err := Solve(joints, req, DefaultPose(), config.Default())
	if err == nil {
		tst.Errorf("expected an input error for mismatched joint count\n")
	}
}
