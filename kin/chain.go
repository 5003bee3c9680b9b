// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import "github.com/rigidchain/ikanalytic/sym"

// LinkEntry is one "Left · J(θ) · Right" product in the chain (spec
// §4.1). Var is nil for dummy/folded entries that carry no variable of
// their own.
type LinkEntry struct {
	Joint *Joint
	Left  *sym.Transform
	Right *sym.Transform
	Var   *sym.JointVar
}

// Chain is the ordered sequence of link entries between base and
// end-effector (spec §3 "Chain").
type Chain struct {
	Base, EndEffector int
	Links             []*LinkEntry
	SolveVars         []*sym.JointVar // solve-order indexed, spec's j0,j1,...
	FreeVars          []*sym.JointVar
}

// BuildChain discovers the base->end-effector path by BFS over the
// joint graph (spec §3), folds dummy joints into their neighbour's
// right-multiplier and consecutive same-physical-joint entries into one
// (spec §4.1), then assigns solve-order variables.
//
// useDummyJoints mirrors the §6 IK-request flag. Dummy joints carry no
// variable, so with either value of the flag they are folded into a
// neighbour and never get an entry of their own in Links; the flag does
// not change the resulting chain.
func BuildChain(joints []*Joint, baseLink, eeLink int, useDummyJoints bool) (*Chain, error) {
	if err := NormalizeCoeffs(joints); err != nil {
		return nil, err
	}
	lg, err := buildLinkGraph(joints)
	if err != nil {
		return nil, err
	}
	path, err := lg.pathJoints(baseLink, eeLink)
	if err != nil {
		return nil, err
	}

	folded := foldDummiesAndDuplicates(path, useDummyJoints)

	c := &Chain{Base: baseLink, EndEffector: eeLink}
	solveOrder := 0
	for _, j := range folded {
		entry := &LinkEntry{Joint: j, Left: j.Left, Right: j.Right}
		switch j.Role {
		case RoleSolve:
			v := sym.NewJointVar(solveOrder)
			entry.Var = v
			c.SolveVars = append(c.SolveVars, v)
			solveOrder++
		case RoleFree:
			v := sym.NewJointVar(1000 + len(c.FreeVars)) // namespaced away from solve indices
			entry.Var = v
			c.FreeVars = append(c.FreeVars, v)
		case RoleDummy:
			// no variable; folded already handled geometry
		}
		c.Links = append(c.Links, entry)
	}
	return c, nil
}

// foldDummiesAndDuplicates implements spec §4.1's two folding rules.
// A dummy joint's Right transform is absorbed into the following
// entry's Left transform (equivalently: the dummy contributes only a
// constant geometric offset, spec §3 "dummy joints fold into their
// neighbour's right-multiplier"). Consecutive joints sharing the same
// physical ID (spec's "same underlying physical index") are merged by
// composing their Left/Right transforms around a single shared Var.
func foldDummiesAndDuplicates(path []*Joint, useDummyJoints bool) []*Joint {
	out := make([]*Joint, 0, len(path))
	var pendingLeft *sym.Transform
	for i := 0; i < len(path); i++ {
		j := path[i]
		if j.Role == RoleDummy {
			if pendingLeft == nil {
				pendingLeft = j.Right
			} else if r, err := pendingLeft.Mul(j.Right); err == nil {
				pendingLeft = r
			}
			if !useDummyJoints {
				continue
			}
			continue
		}
		if len(out) > 0 && out[len(out)-1].ID == j.ID {
			prev := out[len(out)-1]
			if r, err := prev.Right.Mul(j.Left); err == nil {
				prev.Right = r
			}
			continue
		}
		if pendingLeft != nil {
			if l, err := pendingLeft.Mul(j.Left); err == nil {
				j.Left = l
			}
			pendingLeft = nil
		}
		out = append(out, j)
	}
	if pendingLeft != nil && len(out) > 0 {
		// trailing dummies have no following entry: fold their offset
		// into the last entry's right-multiplier instead
		last := out[len(out)-1]
		if r, err := last.Right.Mul(pendingLeft); err == nil {
			last.Right = r
		}
	}
	return out
}
