// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/solvectx"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// RebuildEquations regenerates the equation bag for a (possibly
// inverted) chain. orchestrate has no import of eqn — the decision-tree
// orchestrator and the equation generator are separate components per
// spec §2 — so the caller (typically package ik) supplies this closure
// over eqn.PositionEquations/RotationEquations/RaghavanRoth.
type RebuildEquations func(*kin.Chain) ([]sym.Eq, error)

// SolveChain is the top-level entry point spec §6 describes: drive
// Solve to completion over c's solve/free variables and eqs, wrapping
// the result in the IK-kind root wrapper (spec §3 "Chain... wrappers").
// On an unsolvable forward attempt it inverts the chain and retries
// exactly once (spec §4.6 "Failure semantics", GLOSSARY "Chain
// inversion"), never more, matching spec §9's "at most once" note.
func SolveChain(c *kin.Chain, eqs []sym.Eq, kind tree.IKKind, th *config.Thresholds, rebuild RebuildEquations) (*tree.Chain, error) {
	root, err := solveOnce(c.SolveVars, c.FreeVars, eqs, th)
	if err == nil {
		return &tree.Chain{Kind: kind, Root: root}, nil
	}
	if !ikerrors.IsUnsolvable(err) || rebuild == nil {
		return nil, err
	}

	inv, invErr := kin.InvertChain(c)
	if invErr != nil {
		return nil, err
	}
	invEqs, rerr := rebuild(inv)
	if rerr != nil {
		return nil, err
	}
	root2, err2 := solveOnce(inv.SolveVars, inv.FreeVars, invEqs, th)
	if err2 != nil {
		if ue, ok := err2.(*ikerrors.UnsolvableError); ok {
			ue.Inverse = true
		}
		return nil, err2
	}
	return &tree.Chain{Kind: kind, Root: root2}, nil
}

func solveOnce(solveVars, freeVars []*sym.JointVar, eqs []sym.Eq, th *config.Thresholds) (tree.Node, error) {
	ctx := solvectx.New(th, append([]*sym.JointVar(nil), solveVars...), freeVars)
	return Solve(eqs, ctx)
}
