// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/rigidchain/ikanalytic/sym"

// Single is "θ = expr_list" or "cos θ = expr_list" or "sin θ = expr_list"
// (spec §3). Kind distinguishes which of the three.
type Single struct {
	Var    string // joint variable name this solves, e.g. "j2"
	Kind   SingleKind
	Exprs  []Formula // one or more candidate closed forms, tried in order
	Checks CheckList
	Next   Node

	// SanityEqs is the subset of original equations the orchestrator
	// used to derive this leaf, recorded so a verification pass can
	// re-substitute and check residuals per-leaf rather than only at
	// the subtree's final CheckZeros wrapper (recovered from the
	// original's IKFastSolution.checkValidSolution bookkeeping).
	SanityEqs []sym.Expr
}

// SingleKind discriminates what a Single assigns to.
type SingleKind int

const (
	SingleTheta SingleKind = iota
	SingleCos
	SingleSin
)

func (n *Single) Generate(v Visitor) { v.VisitSingle(n) }
func (n *Single) End(v Visitor)      { v.EndSingle(n) }
func (n *Single) Children() []Node {
	if n.Next == nil {
		return nil
	}
	return []Node{n.Next}
}

// PolynomialRoots is a univariate polynomial in some auxiliary dummy
// (e.g. tan(θ/2)) whose real roots yield θ (spec §3).
type PolynomialRoots struct {
	Var            string
	Dummy          string     // e.g. "u" for tan(theta/2)
	Poly           []sym.Expr // coefficients, ascending degree
	ThetaFromDummy Formula    // e.g. θ = 2*atan(u)
	PreCheck       []sym.Expr
	PostCheck      []sym.Expr
	RangeCheck     []sym.Expr
	Checks         CheckList
	Next           Node

	// SanityEqs mirrors Single.SanityEqs for the polynomial-root case.
	SanityEqs []sym.Expr
}

func (n *PolynomialRoots) Generate(v Visitor) { v.VisitPolynomialRoots(n) }
func (n *PolynomialRoots) End(v Visitor)      { v.EndPolynomialRoots(n) }
func (n *PolynomialRoots) Children() []Node {
	if n.Next == nil {
		return nil
	}
	return []Node{n.Next}
}

// ConicRoots is one polynomial in (cos θ, sin θ) to be intersected with
// the unit circle (spec §3, §4.4 strategy 6).
type ConicRoots struct {
	Var    string
	Poly   sym.Expr // in symbols CosName(), SinName()
	Checks CheckList
	Next   Node
}

func (n *ConicRoots) Generate(v Visitor) { v.VisitConicRoots(n) }
func (n *ConicRoots) End(v Visitor)      { v.EndConicRoots(n) }
func (n *ConicRoots) Children() []Node {
	if n.Next == nil {
		return nil
	}
	return []Node{n.Next}
}

// Conditioned is a list of Single solutions, each guarded by its own
// precondition (spec §3).
type Conditioned struct {
	Branches []ConditionedBranch
}

// ConditionedBranch pairs one precondition with the Single it guards.
type ConditionedBranch struct {
	Condition sym.Expr
	Solution  *Single
}

func (n *Conditioned) Generate(v Visitor) { v.VisitConditioned(n) }
func (n *Conditioned) End(v Visitor)      { v.EndConditioned(n) }
func (n *Conditioned) Children() []Node {
	cs := make([]Node, 0, len(n.Branches))
	for _, b := range n.Branches {
		cs = append(cs, b.Solution)
	}
	return cs
}

// Branch switches on a symbolic value (spec §3).
type Branch struct {
	On    sym.Expr
	Cases map[string]Node
}

func (n *Branch) Generate(v Visitor) { v.VisitBranch(n) }
func (n *Branch) End(v Visitor)      { v.EndBranch(n) }
func (n *Branch) Children() []Node {
	cs := make([]Node, 0, len(n.Cases))
	for _, c := range n.Cases {
		cs = append(cs, c)
	}
	return cs
}

// BranchConds is an ordered list of (condition-vector, subtree) pairs;
// first satisfied wins; last may be unconditional fallback (spec §3,
// §4.6 "degenerate branches").
type BranchConds struct {
	Conds []CondBranch
}

// CondBranch is one (guard conditions, subtree) pair of a BranchConds.
// Unconditional iff len(Conditions) == 0.
type CondBranch struct {
	Conditions []sym.Expr
	Subtree    Node
}

func (n *BranchConds) Generate(v Visitor) { v.VisitBranchConds(n) }
func (n *BranchConds) End(v Visitor)      { v.EndBranchConds(n) }
func (n *BranchConds) Children() []Node {
	cs := make([]Node, 0, len(n.Conds))
	for _, c := range n.Conds {
		cs = append(cs, c.Subtree)
	}
	return cs
}

// CheckZeros requires every expression in Guard to evaluate near zero at
// run time (under "anycondition" semantics per spec §3); takes ZeroBranch
// if so, NonzeroBranch otherwise.
type CheckZeros struct {
	Guard         []sym.Expr
	ZeroBranch    Node
	NonzeroBranch Node
}

func (n *CheckZeros) Generate(v Visitor) { v.VisitCheckZeros(n) }
func (n *CheckZeros) End(v Visitor)      { v.EndCheckZeros(n) }
func (n *CheckZeros) Children() []Node {
	return []Node{n.ZeroBranch, n.NonzeroBranch}
}

// FreeParameter marks a joint as user-supplied input (spec §3).
type FreeParameter struct {
	Var  string
	Next Node
}

func (n *FreeParameter) Generate(v Visitor) { v.VisitFreeParameter(n) }
func (n *FreeParameter) End(v Visitor)      { v.EndFreeParameter(n) }
func (n *FreeParameter) Children() []Node {
	if n.Next == nil {
		return nil
	}
	return []Node{n.Next}
}

// SetJoint pins a joint to a literal angle along a branch (spec §3).
type SetJoint struct {
	Var   string
	Value float64
	Next  Node
}

func (n *SetJoint) Generate(v Visitor) { v.VisitSetJoint(n) }
func (n *SetJoint) End(v Visitor)      { v.EndSetJoint(n) }
func (n *SetJoint) Children() []Node {
	if n.Next == nil {
		return nil
	}
	return []Node{n.Next}
}

// Sequence chains a list of control/solution nodes (spec §3).
type Sequence struct {
	Steps []Node
}

func (n *Sequence) Generate(v Visitor) { v.VisitSequence(n) }
func (n *Sequence) End(v Visitor)      { v.EndSequence(n) }
func (n *Sequence) Children() []Node   { return n.Steps }

// StoreSolution records that all CurVars in scope are now solved and
// the running substitution should be captured as one full IK solution
// (spec §3's control node of the same name).
type StoreSolution struct{}

func (n *StoreSolution) Generate(v Visitor) { v.VisitStoreSolution(n) }
func (n *StoreSolution) End(v Visitor)      { v.EndStoreSolution(n) }
func (n *StoreSolution) Children() []Node   { return nil }

// Break aborts the current branch (spec §3; also the "beyond four nested
// cases" terminal per §4.6).
type Break struct{}

func (n *Break) Generate(v Visitor) { v.VisitBreak(n) }
func (n *Break) End(v Visitor)      { v.EndBreak(n) }
func (n *Break) Children() []Node   { return nil }

// Rotation enters a rotation sub-solver with an inner tree (spec §3).
type Rotation struct {
	Inner Node
}

func (n *Rotation) Generate(v Visitor) { v.VisitRotation(n) }
func (n *Rotation) End(v Visitor)      { v.EndRotation(n) }
func (n *Rotation) Children() []Node   { return []Node{n.Inner} }

// Direction enters a direction sub-solver with an inner tree (spec §3).
type Direction struct {
	Inner Node
}

func (n *Direction) Generate(v Visitor) { v.VisitDirection(n) }
func (n *Direction) End(v Visitor)      { v.EndDirection(n) }
func (n *Direction) Children() []Node   { return []Node{n.Inner} }

// IKKind enumerates the six top-level IK request kinds (spec §6).
type IKKind int

const (
	Transform6D IKKind = iota
	Rotation3D
	Translation3D
	Direction3D
	Ray4D
	Lookat3D
)

// RequiredJointCount returns the number of joints-to-solve spec.md §6
// requires for each kind (6, 3, 3, 2, 4, 2 respectively).
func (k IKKind) RequiredJointCount() int {
	switch k {
	case Transform6D:
		return 6
	case Rotation3D:
		return 3
	case Translation3D:
		return 3
	case Direction3D:
		return 2
	case Ray4D:
		return 4
	case Lookat3D:
		return 2
	}
	return -1
}

// Chain is the top-level wrapper binding the IK type to its root
// solution subtree (spec §3 "Chain... wrappers binding the IK type").
type Chain struct {
	Kind IKKind
	Root Node
}

func (n *Chain) Generate(v Visitor) { v.VisitChain(n) }
func (n *Chain) End(v Visitor)      { v.EndChain(n) }
func (n *Chain) Children() []Node   { return []Node{n.Root} }
