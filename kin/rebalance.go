// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import "github.com/rigidchain/ikanalytic/sym"

// PushTranslationRight pushes any pure-translation tail past the last
// solve joint into that joint's own Right multiplier (spec §3
// "translations are rebalanced across link boundaries to expose
// intersecting axes to the solvers downstream"). Symmetric axis joints
// (spherical wrists, the last three axes of a 6R arm) only expose a
// clean rotation equation when no translation sits between the last
// rotation variable and the end effector; this absorbs it. Reports
// whether the rewrite fired, mirroring the attempt/report pattern
// gofem's fem/domain.go uses for its own local-mutation helpers.
func PushTranslationRight(c *Chain) bool {
	lastSolve := -1
	for i, le := range c.Links {
		if le.Var != nil && le.Joint != nil && le.Joint.Role == RoleSolve {
			lastSolve = i
		}
	}
	if lastSolve < 0 || lastSolve == len(c.Links)-1 {
		return false
	}
	tail := sym.Identity()
	for i := lastSolve + 1; i < len(c.Links); i++ {
		if r, err := tail.Mul(c.Links[i].Right); err == nil {
			tail = r
		}
	}
	if r, err := c.Links[lastSolve].Right.Mul(tail); err == nil {
		c.Links[lastSolve].Right = r
	} else {
		return false
	}
	c.Links = c.Links[:lastSolve+1]
	return true
}

// PushTranslationLeft is the mirror operation at the base: translation
// sitting before the first solve joint is folded into that joint's Left
// multiplier, so the first rotation/prismatic variable sees a clean
// frame with no intervening constant offset on its own side.
func PushTranslationLeft(c *Chain) bool {
	firstSolve := -1
	for i, le := range c.Links {
		if le.Var != nil && le.Joint != nil && le.Joint.Role == RoleSolve {
			firstSolve = i
			break
		}
	}
	if firstSolve <= 0 {
		return false
	}
	head := sym.Identity()
	for i := 0; i < firstSolve; i++ {
		if h, err := head.Mul(c.Links[i].Left); err == nil {
			head = h
		}
	}
	l, err := head.Mul(c.Links[firstSolve].Left)
	if err != nil {
		return false
	}
	c.Links[firstSolve].Left = l
	c.Links = c.Links[firstSolve:]
	return true
}

// WristAxesIntersect reports whether the chain's last three solve
// joints share a common point, the spherical-wrist condition
// PushIntersectingAxisLeft requires (spec §3 "the last three axes
// intersect"). Every Left/Right transform already expresses the
// joint's own rotation about the canonical local z axis (Joint's own
// doc comment), so three consecutive hinge axes are concurrent exactly
// when no translation separates them: the Right multiplier of the
// first two wrist joints carries zero offset.
func WristAxesIntersect(c *Chain, wristStart int) bool {
	if wristStart < 0 || wristStart+2 >= len(c.Links) {
		return false
	}
	for _, le := range c.Links[wristStart : wristStart+2] {
		if le.Joint == nil || le.Joint.Type != Hinge {
			return false
		}
		for i := 0; i < 3; i++ {
			if !le.Right.PosEntry(i).IsZero() {
				return false
			}
		}
	}
	return true
}

// PushIntersectingAxisLeft is the third rewrite spec §3 names
// specifically for 6-DOF chains: when the last three solve joints'
// rotation axes intersect at a single point (the spherical-wrist case),
// the Right multiplier of the link just before the first wrist joint is
// moved into that wrist joint's Left multiplier (the end-to-end product
// is unchanged), so the translation that places the wrist centre sits
// on the wrist joint's own entry.
//
// wristStart is the index into c.Links of the first of the three wrist
// joints; callers determine intersection externally via
// WristAxesIntersect before invoking this.
func PushIntersectingAxisLeft(c *Chain, wristStart int) bool {
	if wristStart <= 0 || wristStart >= len(c.Links) {
		return false
	}
	boundary := c.Links[wristStart-1]
	wrist := c.Links[wristStart]
	l, err := boundary.Right.Mul(wrist.Left)
	if err != nil {
		return false
	}
	wrist.Left = l
	boundary.Right = sym.Identity()
	return true
}

// RebalanceTranslations runs all three spec §4.1 rewrites in order: the
// base and tail translation pushes unconditionally, then the
// intersecting-axis push for 6-DOF chains whose last three solve joints
// turn out concurrent. The single entry point every caller (package ik,
// tools/ikdemo) should use so the three rewrites stay in lockstep.
func RebalanceTranslations(c *Chain) {
	PushTranslationLeft(c)
	PushTranslationRight(c)
	if wristStart, ok := lastThreeSolveStart(c); ok && WristAxesIntersect(c, wristStart) {
		PushIntersectingAxisLeft(c, wristStart)
	}
}

// lastThreeSolveStart locates the link index of the first of the last
// three solve joints, the wrist candidate RebalanceTranslations checks
// for axis intersection. Only 6-DOF chains carry a spherical wrist
// (seed scenario 4); shorter chains report ok=false.
func lastThreeSolveStart(c *Chain) (int, bool) {
	if len(c.SolveVars) != 6 {
		return 0, false
	}
	var solveIdx []int
	for i, le := range c.Links {
		if le.Var != nil && le.Joint != nil && le.Joint.Role == RoleSolve {
			solveIdx = append(solveIdx, i)
		}
	}
	if len(solveIdx) != 6 {
		return 0, false
	}
	return solveIdx[3], true
}
