// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the solution-tree tagged union of spec.md §3:
// a tree (not a DAG) of solution nodes, each variant a distinct Go type
// rather than a shared inheritance base, walked by a Visitor the
// (external) code generator implements. The enter/leave pairing mirrors
// the VisitBefore/VisitAfter walk other_examples' mtail code generator
// uses over its own AST — the same shape, applied to a solution tree
// instead of a program's syntax tree.
package tree

import "github.com/rigidchain/ikanalytic/sym"

// Node is the tagged-union interface every solution-tree variant
// implements. Generate/End are the two operations spec.md §6 says the
// external code generator pairs to emit enter/leave markers; the core
// never inspects what the generator does with them.
type Node interface {
	Generate(v Visitor)
	End(v Visitor)
	Children() []Node
}

// Visitor is implemented by the external code generator. One method per
// variant, called from that variant's Generate/End.
type Visitor interface {
	VisitSingle(n *Single)
	EndSingle(n *Single)
	VisitPolynomialRoots(n *PolynomialRoots)
	EndPolynomialRoots(n *PolynomialRoots)
	VisitConicRoots(n *ConicRoots)
	EndConicRoots(n *ConicRoots)
	VisitConditioned(n *Conditioned)
	EndConditioned(n *Conditioned)
	VisitBranch(n *Branch)
	EndBranch(n *Branch)
	VisitBranchConds(n *BranchConds)
	EndBranchConds(n *BranchConds)
	VisitCheckZeros(n *CheckZeros)
	EndCheckZeros(n *CheckZeros)
	VisitFreeParameter(n *FreeParameter)
	EndFreeParameter(n *FreeParameter)
	VisitSetJoint(n *SetJoint)
	EndSetJoint(n *SetJoint)
	VisitSequence(n *Sequence)
	EndSequence(n *Sequence)
	VisitStoreSolution(n *StoreSolution)
	EndStoreSolution(n *StoreSolution)
	VisitBreak(n *Break)
	EndBreak(n *Break)
	VisitRotation(n *Rotation)
	EndRotation(n *Rotation)
	VisitDirection(n *Direction)
	EndDirection(n *Direction)
	VisitChain(n *Chain)
	EndChain(n *Chain)
}

// Walk performs a full pre/post traversal, calling n.Generate(v) before
// descending into Children and n.End(v) after. A variant's own
// Generate/End only call the matching Visitor method and do not descend
// into its children, so calling n.Generate directly visits n alone.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	n.Generate(v)
	for _, c := range n.Children() {
		Walk(v, c)
	}
	n.End(v)
}

// CheckList bundles the three postcheck lists spec §4.4 requires every
// pairwise-solver solution to carry, and which single-variable solutions
// carry too whenever a divisor was introduced.
type CheckList struct {
	PostcheckForZeros    []sym.Expr
	PostcheckForNonzeros []sym.Expr
	PostcheckForRange    []sym.Expr // must lie in [-1,1]
}
