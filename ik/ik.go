// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ik wires the leaf components (kin, eqn, orchestrate) into the
// single entry point spec.md §6 describes as "Input to the core" / "IK
// request": given a joint description list and a request, it builds the
// chain, generates the equation bag, and drives the decision-tree
// orchestrator to a full solution tree, handling the chain-inversion
// retry by supplying orchestrate.SolveChain with a rebuild closure over
// eqn (spec §4.6, GLOSSARY "Chain inversion"). Grounded on gofem's own
// fem/main.go: a thin driver package that does nothing but sequence
// calls into lower packages in the order the pipeline requires.
package ik

import (
	"fmt"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/eqn"
	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/orchestrate"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// Request is spec §6's "IK request": (base-link, end-effector-link,
// list of joints to solve for — carried implicitly via each Joint's
// Role, list of joints declared free — likewise, use-dummy-joints flag,
// IK kind).
type Request struct {
	BaseLink, EndEffectorLink int
	UseDummyJoints            bool
	Kind                      tree.IKKind
}

// EndEffectorPose is the symbolic end-effector pose the equation
// generator compares the chain's accumulated transform against: nine
// rotation entries plus three translation entries, named r00..r22/px/
// py/pz per spec §6 "Symbols used in the output tree".
type EndEffectorPose struct {
	Rot [3][3]sym.Expr
	Pos [3]sym.Expr
}

// DefaultPose builds the canonical symbolic pose from the r00..r22/px/
// py/pz names spec §6 fixes as the output-tree's free pose symbols.
func DefaultPose() EndEffectorPose {
	var p EndEffectorPose
	names := [3]string{"px", "py", "pz"}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p.Rot[r][c] = sym.Symbol(fmt.Sprintf("r%d%d", r, c))
		}
		p.Pos[r] = sym.Symbol(names[r])
	}
	return p
}

// Solve builds the chain from joints, validates the request against
// spec §6's joints-to-solve/kind arity table (via
// tree.IKKind.RequiredJointCount), generates the equation bag at the
// end-effector cut point, and drives orchestrate to a full decision
// tree, retrying once with the chain inverted on failure (spec §4.6).
func Solve(joints []*kin.Joint, req Request, pose EndEffectorPose, th *config.Thresholds) (*tree.Chain, error) {
	required := req.Kind.RequiredJointCount()
	if required < 0 {
		return nil, ikerrors.NewInputError("unknown IK kind %v", req.Kind)
	}

	c, err := kin.BuildChain(joints, req.BaseLink, req.EndEffectorLink, req.UseDummyJoints)
	if err != nil {
		return nil, err
	}
	if len(c.SolveVars) != required {
		return nil, ikerrors.NewInputError(
			"IK kind %v requires %d solve joints, chain declares %d", req.Kind, required, len(c.SolveVars))
	}

	kin.RebalanceTranslations(c)

	eqs, err := buildEquations(c, pose, th)
	if err != nil {
		return nil, err
	}

	rebuild := func(inv *kin.Chain) ([]sym.Eq, error) {
		return buildEquations(inv, pose, th)
	}
	return orchestrate.SolveChain(c, eqs, req.Kind, th, rebuild)
}

// buildEquations assembles the position, rotation and Raghavan-Roth
// equation families at the chain's final cut point (spec §4.2).
func buildEquations(c *kin.Chain, pose EndEffectorPose, th *config.Thresholds) ([]sym.Eq, error) {
	if len(c.Links) == 0 {
		return nil, ikerrors.NewInputError("chain has no links between base and end-effector")
	}
	acc, err := kin.BuildAccumulators(c, th)
	if err != nil {
		return nil, err
	}
	cut := len(c.Links) - 1
	var eqs []sym.Eq
	eqs = append(eqs, eqn.PositionEquations(acc, cut, pose.Pos, th)...)
	eqs = append(eqs, eqn.RotationEquations(acc, cut, pose.Rot, th)...)
	eqs = append(eqs, eqn.RaghavanRoth(baseFrame(), eeFrame(pose))...)
	return eqs, nil
}

// baseFrame is the chain's own axis line at the base link: z at the
// origin, the same convention kin.jointTransform uses for every hinge
// (rotation about local z).
func baseFrame() eqn.Frame {
	return eqn.Frame{
		L: eqn.Vec3{sym.Zero(), sym.Zero(), sym.One()},
		P: eqn.Vec3{sym.Zero(), sym.Zero(), sym.Zero()},
	}
}

// eeFrame is the declared end-effector axis line: its z column and its
// position, the two Raghavan-Roth needs to relate against baseFrame
// (spec §4.2, GLOSSARY "Raghavan-Roth equations").
func eeFrame(pose EndEffectorPose) eqn.Frame {
	return eqn.Frame{
		L: eqn.Vec3{pose.Rot[0][2], pose.Rot[1][2], pose.Rot[2][2]},
		P: eqn.Vec3{pose.Pos[0], pose.Pos[1], pose.Pos[2]},
	}
}
