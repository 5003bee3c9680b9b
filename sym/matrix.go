// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"fmt"

	"zappem.net/math/algex/matrix"
	"zappem.net/math/algex/rotation"
)

// Transform is a symbolic 4x4 homogeneous transform, kept as a 3x3
// rotation block plus a 3x1 translation rather than one 4x4
// algex matrix, since every consumer (kin's accumulators, eqn's
// position/rotation equation builders) wants the two blocks separately
// (spec §3 "Transform accumulators").
type Transform struct {
	R *matrix.Matrix // 3x3
	P *matrix.Matrix // 3x1
}

// Identity returns the identity transform.
func Identity() *Transform {
	r, _ := matrix.Identity(3)
	p, _ := matrix.NewMatrix(3, 1)
	return &Transform{R: r, P: p}
}

// Translation builds a pure-translation transform from three Exprs.
func Translation(x, y, z Expr) *Transform {
	r, _ := matrix.Identity(3)
	p, _ := matrix.NewMatrix(3, 1)
	p.Set(0, 0, x.e)
	p.Set(1, 0, y.e)
	p.Set(2, 0, z.e)
	return &Transform{R: r, P: p}
}

// HingeRotation builds a pure-rotation transform about one of the
// principal axes, parameterised by a joint variable name (e.g. "0" for
// j0); algex's rotation package already emits the 3x3 symbolic matrix in
// terms of cN/sN (see rotation.RX/RY/RZ, used identically in
// other_examples' algex IK walkthrough).
func HingeRotation(axis byte, jointName string) (*Transform, error) {
	var m *matrix.Matrix
	switch axis {
	case 'x', 'X':
		m = rotation.RX(jointName)
	case 'y', 'Y':
		m = rotation.RY(jointName)
	case 'z', 'Z':
		m = rotation.RZ(jointName)
	default:
		return nil, fmt.Errorf("sym: unsupported hinge axis %q", axis)
	}
	p, _ := matrix.NewMatrix(3, 1)
	return &Transform{R: m, P: p}, nil
}

// FromMatrix34 builds a Transform from a row-major 3x4 block (rotation
// columns 0-2, translation column 3), the shape spec §6's joint-stream
// record carries for both the left and right matrices.
func FromMatrix34(rows [3][4]float64) *Transform {
	r, _ := matrix.Identity(3)
	p, _ := matrix.NewMatrix(3, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, FromFloat(rows[i][j]).e)
		}
		p.Set(i, 0, FromFloat(rows[i][3]).e)
	}
	return &Transform{R: r, P: p}
}

// Mul composes two transforms: (a then b) in a's frame, i.e. a*b.
func (a *Transform) Mul(b *Transform) (*Transform, error) {
	r, err := a.R.Mul(b.R)
	if err != nil {
		return nil, fmt.Errorf("sym: transform rotation product: %w", err)
	}
	rp, err := a.R.Mul(b.P)
	if err != nil {
		return nil, fmt.Errorf("sym: transform rotate-translate: %w", err)
	}
	p := rp.Add(a.P, One().e)
	return &Transform{R: r, P: p}, nil
}

// Inverse returns the rigid-transform inverse: R transposed, translation
// -(R^T · P). Used to build the LeftInvAll accumulator (spec §3), the
// same transpose-and-premultiply step other_examples' algex IK
// walkthrough uses to peel known joints off the lhs of a pose equation.
func (a *Transform) Inverse() (*Transform, error) {
	rt := a.R.Transpose()
	rp, err := rt.Mul(a.P)
	if err != nil {
		return nil, fmt.Errorf("sym: transform inverse: %w", err)
	}
	zero, _ := matrix.NewMatrix(3, 1)
	p := zero.Add(rp, Rational(-1, 1).e)
	return &Transform{R: rt, P: p}, nil
}

// RotEntry returns the (i,j) rotation entry as an Expr (spec's r00..r22
// pose symbols come from here once T is the end-effector transform).
func (a *Transform) RotEntry(i, j int) Expr { return Expr{e: a.R.El(i, j)} }

// PosEntry returns the i-th translation entry (px,py,pz).
func (a *Transform) PosEntry(i int) Expr { return Expr{e: a.P.El(i, 0)} }
