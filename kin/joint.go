// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kin implements the kinematic chain builder (spec.md §4.1, 8%
// share): it turns a flat list of joint descriptions into an ordered
// chain of transforms between a declared base and end-effector link,
// identifies which joints are to be solved, and rebalances translations
// across link boundaries to expose intersecting axes for the solvers
// downstream. Grounded on gofem's fem/domain.go SetStage: both walk a
// graph of connectivity once (cells/verts there, joints/links here) to
// produce an ordered, equation-ready structure plus classification
// subsets (active/inactive there; solve/free/dummy here).
package kin

import (
	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/sym"
)

// Type is the joint kinematic type (spec §3 "Joint"); non-goals exclude
// anything else (spec §1).
type Type int

const (
	Hinge Type = iota
	Prismatic
)

func (t Type) String() string {
	if t == Prismatic {
		return "prismatic"
	}
	return "hinge"
}

// ParseType accepts the four wire-format spellings spec §6 lists.
func ParseType(tag string) (Type, error) {
	switch tag {
	case "hinge", "revolute":
		return Hinge, nil
	case "slider", "prismatic":
		return Prismatic, nil
	}
	return 0, ikerrors.NewInputError("unsupported joint type %q", tag)
}

// Role classifies a joint for solving purposes (spec §3).
type Role int

const (
	RoleSolve Role = iota
	RoleFree
	RoleDummy
)

// Joint is one entry in the raw joint-description list (spec §3, §6).
// Left and Right are the pre/post 4x4 transforms already expressed so
// that the joint's own variable motion is a canonical rotation (hinge)
// or translation (prismatic) about/along the parent-frame Z axis — the
// alignment of an arbitrary physical Axis into that canonical form is
// the kinematic-body loader's job (external collaborator, spec §1); by
// the time a Joint reaches this package, Axis is informational only.
type Joint struct {
	ID         int
	Type       Type
	ChildLink  int
	ParentLink int
	Axis       [3]float64
	A, B       float64 // effective = a*theta + b
	Left       *sym.Transform
	Right      *sym.Transform
	Role       Role
}

// EffectiveIsIdentity reports whether a==1 and b==0, i.e. no affine
// remap is needed between the physical joint value and the canonical
// variable the solver works with (spec §3 Joint coefficients).
func (j *Joint) EffectiveIsIdentity() bool {
	return j.A == 1 && j.B == 0
}
