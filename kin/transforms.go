// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"fmt"
	"strconv"

	"github.com/rigidchain/ikanalytic/chop"
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/sym"
)

// Accumulators holds the three running products spec §3 names:
// LeftAll[k]    = Left_0 · J_0 · Right_0 · ... · Left_k · J_k  (everything
//                 up to and including joint k's own variable)
// LeftInvAll[k] = LeftAll[k] inverted
// RightAll[k]   = Right_k · Left_{k+1} · J_{k+1} · ... · T_ee  (everything
//                 from just after joint k's variable to the end effector)
// indexed by position in Chain.Links, not by solve order, so dummy/free
// entries have a slot too even though no solver ever looks them up by
// JointVar index.
type Accumulators struct {
	LeftAll    []*sym.Transform
	LeftInvAll []*sym.Transform
	RightAll   []*sym.Transform
}

// BuildAccumulators walks the chain once forward (LeftAll/LeftInvAll) and
// once backward (RightAll), chopping each product against the configured
// accuracy so later equation generation never drags near-zero noise
// terms through the whole derivation (spec §9).
func BuildAccumulators(c *Chain, th *config.Thresholds) (*Accumulators, error) {
	n := len(c.Links)
	acc := &Accumulators{
		LeftAll:    make([]*sym.Transform, n),
		LeftInvAll: make([]*sym.Transform, n),
		RightAll:   make([]*sym.Transform, n),
	}

	running := sym.Identity()
	for i, le := range c.Links {
		var err error
		running, err = running.Mul(le.Left)
		if err != nil {
			return nil, fmt.Errorf("kin: accumulating left at link %d: %w", i, err)
		}
		if j, err := jointTransform(le); err == nil && j != nil {
			running, err = running.Mul(j)
			if err != nil {
				return nil, fmt.Errorf("kin: accumulating joint at link %d: %w", i, err)
			}
		}
		running = chopTransform(running, th.ChopAccuracy)
		acc.LeftAll[i] = running
		inv, err := running.Inverse()
		if err != nil {
			return nil, fmt.Errorf("kin: inverting left accumulator at link %d: %w", i, err)
		}
		acc.LeftInvAll[i] = chopTransform(inv, th.ChopAccuracy)
	}

	trailing := sym.Identity()
	for i := n - 1; i >= 0; i-- {
		le := c.Links[i]
		trailing, _ = le.Right.Mul(trailing)
		trailing = chopTransform(trailing, th.ChopAccuracy)
		acc.RightAll[i] = trailing
		if j, err := jointTransform(le); err == nil && j != nil {
			trailing, _ = j.Mul(trailing)
		}
		trailing, _ = le.Left.Mul(trailing)
	}

	return acc, nil
}

// jointTransform returns the joint's own variable transform (hinge
// rotation or prismatic translation), or nil for dummy entries with no
// Var.
func jointTransform(le *LinkEntry) (*sym.Transform, error) {
	if le.Var == nil || le.Joint == nil {
		return nil, nil
	}
	switch le.Joint.Type {
	case Hinge:
		return sym.HingeRotation('z', strconv.Itoa(le.Var.Index))
	case Prismatic:
		amount := le.Var.Theta
		if le.Joint.A != 1 {
			amount = sym.Mul(sym.FromFloat(le.Joint.A), amount)
		}
		if le.Joint.B != 0 {
			amount = amount.Add(sym.FromFloat(le.Joint.B))
		}
		return sym.Translation(sym.Zero(), sym.Zero(), amount), nil
	}
	return nil, fmt.Errorf("kin: unknown joint type %v", le.Joint.Type)
}

func chopTransform(t *sym.Transform, accuracy float64) *sym.Transform {
	r := [][]sym.Expr{
		{t.RotEntry(0, 0), t.RotEntry(0, 1), t.RotEntry(0, 2)},
		{t.RotEntry(1, 0), t.RotEntry(1, 1), t.RotEntry(1, 2)},
		{t.RotEntry(2, 0), t.RotEntry(2, 1), t.RotEntry(2, 2)},
	}
	r = chop.Matrix(r, accuracy)
	out := sym.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.R.Set(i, j, r[i][j].Raw())
		}
	}
	p := []sym.Expr{t.PosEntry(0), t.PosEntry(1), t.PosEntry(2)}
	for i := 0; i < 3; i++ {
		p[i] = chop.Expr(p[i], accuracy)
		out.P.Set(i, 0, p[i].Raw())
	}
	return out
}
