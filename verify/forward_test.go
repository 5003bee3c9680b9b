// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
)

func Test_forward01(tst *testing.T) {

	chk.PrintTitle("forward01. single prismatic joint translates along its own Z")

	v := sym.NewJointVar(0)
	c := &kin.Chain{
		Links: []*kin.LinkEntry{
			{
				Joint: &kin.Joint{Type: kin.Prismatic, A: 1, B: 0},
				Left:  sym.Identity(),
				Right: sym.Identity(),
				Var:   v,
			},
		},
		SolveVars: []*sym.JointVar{v},
	}

	p, err := ForwardKinematics(c, map[string]float64{"j0": 2.5})
	if err != nil {
		tst.Errorf("ForwardKinematics failed: %v\n", err)
		return
	}
	chk.AnaNum(tst, "pz", 1e-12, p.Pos[2], 2.5, false)
	chk.AnaNum(tst, "px", 1e-12, p.Pos[0], 0, false)
	chk.AnaNum(tst, "py", 1e-12, p.Pos[1], 0, false)
	chk.AnaNum(tst, "r00", 1e-12, p.Rot[0][0], 1, false)
	chk.AnaNum(tst, "r11", 1e-12, p.Rot[1][1], 1, false)
	chk.AnaNum(tst, "r22", 1e-12, p.Rot[2][2], 1, false)
}

func Test_forward02(tst *testing.T) {

	chk.PrintTitle("forward02. single hinge joint rotates about its own Z by pi/2")

	v := sym.NewJointVar(0)
	c := &kin.Chain{
		Links: []*kin.LinkEntry{
			{
				Joint: &kin.Joint{Type: kin.Hinge, A: 1, B: 0},
				Left:  sym.Identity(),
				Right: sym.Identity(),
				Var:   v,
			},
		},
		SolveVars: []*sym.JointVar{v},
	}

	p, err := ForwardKinematics(c, map[string]float64{"j0": math.Pi / 2})
	if err != nil {
		tst.Errorf("ForwardKinematics failed: %v\n", err)
		return
	}
	chk.AnaNum(tst, "r00", 1e-12, p.Rot[0][0], 0, false)
	chk.AnaNum(tst, "r01", 1e-12, p.Rot[0][1], -1, false)
	chk.AnaNum(tst, "r10", 1e-12, p.Rot[1][0], 1, false)
	chk.AnaNum(tst, "r11", 1e-12, p.Rot[1][1], 0, false)
	chk.AnaNum(tst, "px", 1e-12, p.Pos[0], 0, false)
	chk.AnaNum(tst, "py", 1e-12, p.Pos[1], 0, false)
	chk.AnaNum(tst, "pz", 1e-12, p.Pos[2], 0, false)
}

func Test_forward03(tst *testing.T) {

	chk.PrintTitle("forward03. a constant Right translation offsets the joint's own motion")

	v := sym.NewJointVar(0)
	c := &kin.Chain{
		Links: []*kin.LinkEntry{
			{
				Joint: &kin.Joint{Type: kin.Prismatic, A: 1, B: 0},
				Left:  sym.Identity(),
				Right: sym.Translation(sym.Rational(1, 1), sym.Zero(), sym.Zero()),
				Var:   v,
			},
		},
		SolveVars: []*sym.JointVar{v},
	}

	p, err := ForwardKinematics(c, map[string]float64{"j0": 2})
	if err != nil {
		tst.Errorf("ForwardKinematics failed: %v\n", err)
		return
	}
	chk.AnaNum(tst, "px", 1e-12, p.Pos[0], 1, false)
	chk.AnaNum(tst, "pz", 1e-12, p.Pos[2], 2, false)
}
