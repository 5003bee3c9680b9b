// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// countingVisitor counts how many times each variant's enter hook fires;
// used only to exercise Walk's pairing, not a real code generator.
type countingVisitor struct{ enters, leaves int }

func (c *countingVisitor) VisitSingle(n *Single)                       { c.enters++ }
func (c *countingVisitor) EndSingle(n *Single)                         { c.leaves++ }
func (c *countingVisitor) VisitPolynomialRoots(n *PolynomialRoots)     { c.enters++ }
func (c *countingVisitor) EndPolynomialRoots(n *PolynomialRoots)       { c.leaves++ }
func (c *countingVisitor) VisitConicRoots(n *ConicRoots)               { c.enters++ }
func (c *countingVisitor) EndConicRoots(n *ConicRoots)                 { c.leaves++ }
func (c *countingVisitor) VisitConditioned(n *Conditioned)             { c.enters++ }
func (c *countingVisitor) EndConditioned(n *Conditioned)               { c.leaves++ }
func (c *countingVisitor) VisitBranch(n *Branch)                       { c.enters++ }
func (c *countingVisitor) EndBranch(n *Branch)                         { c.leaves++ }
func (c *countingVisitor) VisitBranchConds(n *BranchConds)             { c.enters++ }
func (c *countingVisitor) EndBranchConds(n *BranchConds)               { c.leaves++ }
func (c *countingVisitor) VisitCheckZeros(n *CheckZeros)               { c.enters++ }
func (c *countingVisitor) EndCheckZeros(n *CheckZeros)                 { c.leaves++ }
func (c *countingVisitor) VisitFreeParameter(n *FreeParameter)         { c.enters++ }
func (c *countingVisitor) EndFreeParameter(n *FreeParameter)           { c.leaves++ }
func (c *countingVisitor) VisitSetJoint(n *SetJoint)                   { c.enters++ }
func (c *countingVisitor) EndSetJoint(n *SetJoint)                     { c.leaves++ }
func (c *countingVisitor) VisitSequence(n *Sequence)                   { c.enters++ }
func (c *countingVisitor) EndSequence(n *Sequence)                     { c.leaves++ }
func (c *countingVisitor) VisitStoreSolution(n *StoreSolution)         { c.enters++ }
func (c *countingVisitor) EndStoreSolution(n *StoreSolution)           { c.leaves++ }
func (c *countingVisitor) VisitBreak(n *Break)                         { c.enters++ }
func (c *countingVisitor) EndBreak(n *Break)                           { c.leaves++ }
func (c *countingVisitor) VisitRotation(n *Rotation)                   { c.enters++ }
func (c *countingVisitor) EndRotation(n *Rotation)                     { c.leaves++ }
func (c *countingVisitor) VisitDirection(n *Direction)                 { c.enters++ }
func (c *countingVisitor) EndDirection(n *Direction)                   { c.leaves++ }
func (c *countingVisitor) VisitChain(n *Chain)                         { c.enters++ }
func (c *countingVisitor) EndChain(n *Chain)                           { c.leaves++ }

func Test_walk01(tst *testing.T) {

	chk.PrintTitle("walk01. enter/leave pairing over a small tree")

	root := &Chain{
		Kind: Transform6D,
		Root: &Sequence{Steps: []Node{
			&SetJoint{Var: "j2", Value: 0},
			&StoreSolution{},
		}},
	}

	v := &countingVisitor{}
	Walk(v, root)

	chk.IntAssert(v.enters, v.leaves)
	chk.IntAssert(v.enters, 4) // Chain, Sequence, SetJoint, StoreSolution
}
