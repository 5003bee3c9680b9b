// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"fmt"

	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/ledger"
	"github.com/rigidchain/ikanalytic/solvectx"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// specialAngle is one of the four hinge boundary positions spec §4.6
// tests every divide guard against, given as the (cos,sin) pair the
// guard's c_i/s_i factors would take at that angle.
type specialAngle struct {
	name string
	cos  sym.Expr
	sin  sym.Expr
}

var specialAngles = []specialAngle{
	{"0", sym.One(), sym.Zero()},
	{"pi/2", sym.Zero(), sym.One()},
	{"pi", sym.Rational(-1, 1), sym.Zero()},
	{"-pi/2", sym.Zero(), sym.Rational(-1, 1)},
}

// poseZeroNames are the three translation pose components spec §4.6
// also tries as vanishing conditions ("p in {px,py,pz} = 0").
var poseZeroNames = []string{"px", "py", "pz"}

// maxDegenerateCandidates is spec §4.6's "keep up to three least-complex
// candidates" when every candidate carries a divide guard.
const maxDegenerateCandidates = 3

// substitution is one (symbol name, replacement) pair used both to probe
// whether a guard vanishes and, if so, to specialise the equation bag
// for the recursive branch.
type substitution struct {
	pattern string
	repl    sym.Expr
}

// degenerateCase is one vanishing condition found for a guard: the
// condition expressions recorded on the resulting BranchConds case, the
// ledger key used to dedupe it, and the substitutions applied before
// recursing.
type degenerateCase struct {
	conditions []sym.Expr
	ledgerCase ledger.Case
	subs       []substitution
}

// handleDegenerateCases implements spec §4.6 "Degenerate branches" and
// §8's "recursion depth into degenerate cases never exceeds 4": every
// surviving candidate carries a divide-by-zero guard, so up to three
// least-complex candidates are kept, and for each of their guard
// expressions a vanishing condition on a previously solved variable (or
// a zero pose component) is searched for. Each distinct vanishing
// condition (checked against the ledger for duplicates) becomes one case
// of the resulting BranchConds; the least-complex candidate itself,
// committed as it is, becomes the unconditional fallback.
func handleDegenerateCases(cands []candidate, eqs []sym.Eq, ctx *solvectx.Context) (tree.Node, error) {
	if len(cands) == 0 {
		return nil, &ikerrors.UnsolvableError{Stage: "orchestrate", Reason: "no candidates to branch on"}
	}
	if ctx.Depth >= ctx.Thresholds.MaxDegenerateDepth {
		return &tree.Break{}, nil
	}

	top := cands
	if len(top) > maxDegenerateCandidates {
		top = top[:maxDegenerateCandidates]
	}

	var conds []tree.CondBranch
	for _, c := range top {
		for _, guard := range c.guards {
			for _, dc := range vanishingConditions(guard, ctx) {
				if !ctx.Ledger.Add(dc.ledgerCase) {
					continue // duplicate, per the ledger's own dedup contract
				}
				child := ctx.Fork()
				sub, err := Solve(substituteAll(eqs, dc.subs), child)
				if err != nil {
					continue
				}
				conds = append(conds, tree.CondBranch{Conditions: dc.conditions, Subtree: sub})
			}
		}
	}

	fallbackCtx := ctx.Fork()
	fallback, err := commit(top[0], eqs, fallbackCtx)
	if err != nil {
		if len(conds) == 0 {
			return nil, err
		}
		return &tree.BranchConds{Conds: conds}, nil
	}
	conds = append(conds, tree.CondBranch{Conditions: nil, Subtree: fallback})
	return &tree.BranchConds{Conds: conds}, nil
}

// vanishingConditions tests guard against every previously solved
// variable's four boundary angles and against each pose component being
// zero, returning one degenerateCase per combination that zeroes it.
func vanishingConditions(guard sym.Expr, ctx *solvectx.Context) []degenerateCase {
	var out []degenerateCase
	for _, v := range ctx.SolvedVars {
		cPat, errC := sym.ParseFactor(v.CosName())
		sPat, errS := sym.ParseFactor(v.SinName())
		if errC != nil || errS != nil {
			continue
		}
		for _, sa := range specialAngles {
			trial := guard.Substitute(cPat, sa.cos)
			trial = trial.Substitute(sPat, sa.sin)
			if !trial.IsZero() {
				continue
			}
			out = append(out, degenerateCase{
				conditions: []sym.Expr{v.Cos.Sub(sa.cos), v.Sin.Sub(sa.sin)},
				ledgerCase: ledger.Case{fmt.Sprintf("%s=%s", v.ThetaName(), sa.name)},
				subs: []substitution{
					{pattern: v.CosName(), repl: sa.cos},
					{pattern: v.SinName(), repl: sa.sin},
				},
			})
		}
	}
	for _, name := range poseZeroNames {
		pat, err := sym.ParseFactor(name)
		if err != nil {
			continue
		}
		trial := guard.Substitute(pat, sym.Zero())
		if !trial.IsZero() {
			continue
		}
		out = append(out, degenerateCase{
			conditions: []sym.Expr{sym.Symbol(name)},
			ledgerCase: ledger.Case{name + "=0"},
			subs:       []substitution{{pattern: name, repl: sym.Zero()}},
		})
	}
	return out
}

// substituteAll applies every substitution in subs to every equation in
// eqs, in order, returning a new slice (eqs itself is left untouched).
func substituteAll(eqs []sym.Eq, subs []substitution) []sym.Eq {
	out := append([]sym.Eq(nil), eqs...)
	for _, s := range subs {
		pat, err := sym.ParseFactor(s.pattern)
		if err != nil {
			continue
		}
		for i, e := range out {
			out[i] = e.Substitute(pat, s.repl)
		}
	}
	return out
}
