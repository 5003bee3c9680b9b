// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package verify implements the testable-properties machinery of spec.md
// §8: a numeric forward-kinematics evaluator plus an interpreter that
// walks a generated tree.Chain the way the (external) code generator
// would, so a round-trip property test can check that a produced IK
// solution reproduces the pose it was solved for. Grounded on gofem's
// ana package: both compute a closed-form reference and compare it
// against a numerical model, rather than trusting the derivation by
// construction.
package verify

import (
	"fmt"
	"math"

	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
	"gonum.org/v1/gonum/mat"
)

// Pose is a numeric end-effector pose: 3x3 rotation plus translation,
// the numeric twin of package ik's symbolic EndEffectorPose.
type Pose struct {
	Rot [3][3]float64
	Pos [3]float64
}

// ForwardKinematics evaluates the chain's accumulated transform at the
// given numeric joint values (keyed by each JointVar's ThetaName, e.g.
// "j0", covering both solve and free variables), the numeric analogue of
// kin.BuildAccumulators' LeftAll product (spec §3 "Transform
// accumulators"). Used by the round-trip property test (spec §8) to
// compare a generated IK solution's inputs back against the pose it
// claims to solve.
func ForwardKinematics(c *kin.Chain, theta map[string]float64) (Pose, error) {
	running := mat.NewDense(4, 4, nil)
	running.Scale(1, identity4())

	for i, le := range c.Links {
		left, err := evalConstTransform(le.Left)
		if err != nil {
			return Pose{}, fmt.Errorf("verify: link %d left transform: %w", i, err)
		}
		running = mul4(running, left)

		if le.Var != nil && le.Joint != nil {
			val, ok := theta[le.Var.ThetaName()]
			if !ok {
				return Pose{}, fmt.Errorf("verify: no numeric value supplied for %s", le.Var.ThetaName())
			}
			jt, err := numericJointTransform(le, val)
			if err != nil {
				return Pose{}, err
			}
			running = mul4(running, jt)
		}

		right, err := evalConstTransform(le.Right)
		if err != nil {
			return Pose{}, fmt.Errorf("verify: link %d right transform: %w", i, err)
		}
		running = mul4(running, right)
	}

	var p Pose
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 3; cc++ {
			p.Rot[r][cc] = running.At(r, cc)
		}
		p.Pos[r] = running.At(r, 3)
	}
	return p, nil
}

func identity4() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return d
}

func mul4(a, b *mat.Dense) *mat.Dense {
	out := mat.NewDense(4, 4, nil)
	out.Mul(a, b)
	return out
}

// evalConstTransform evaluates a sym.Transform's entries with no symbol
// bindings, which succeeds exactly when the transform carries only
// rational constants — true of every Joint.Left/Right by construction
// (spec §4.1: the joint's own variable motion lives in a separate factor
// applied by numericJointTransform, never inside Left/Right).
func evalConstTransform(t *sym.Transform) (*mat.Dense, error) {
	out := identity4()
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 3; cc++ {
			v, err := sym.Eval(t.RotEntry(r, cc), nil)
			if err != nil {
				return nil, fmt.Errorf("rotation entry (%d,%d): %w", r, cc, err)
			}
			out.Set(r, cc, v)
		}
		v, err := sym.Eval(t.PosEntry(r), nil)
		if err != nil {
			return nil, fmt.Errorf("translation entry %d: %w", r, err)
		}
		out.Set(r, 3, v)
	}
	return out, nil
}

// numericJointTransform mirrors kin/transforms.go's jointTransform, but
// produces a numeric 4x4 homogeneous matrix for a bound value val rather
// than a symbolic one (spec §3 "effective parameter = a*theta+b").
func numericJointTransform(le *kin.LinkEntry, val float64) (*mat.Dense, error) {
	out := identity4()
	switch le.Joint.Type {
	case kin.Hinge:
		c, s := cosSin(val)
		out.Set(0, 0, c)
		out.Set(0, 1, -s)
		out.Set(1, 0, s)
		out.Set(1, 1, c)
	case kin.Prismatic:
		amount := val
		if le.Joint.A != 1 {
			amount *= le.Joint.A
		}
		amount += le.Joint.B
		out.Set(2, 3, amount)
	default:
		return nil, fmt.Errorf("verify: unknown joint type %v", le.Joint.Type)
	}
	return out, nil
}

func cosSin(theta float64) (c, s float64) {
	return math.Cos(theta), math.Sin(theta)
}
