// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrate implements the decision-tree orchestrator (spec.md
// §4.6, 20% share): the top-level recursive driver that chooses the
// next variable to solve, scores candidate solutions from solve1/solve2,
// inserts divide-by-zero guards and degenerate-case branches, and
// maintains the ledger of cases already handled. Grounded on gofem's
// fem/solver.go iterate-until-done driver shape: both run an explicit
// state machine over a mutable bag (the global residual there, the
// equation bag here) until a terminal state is reached or the step
// budget/time budget is exceeded.
package orchestrate

import (
	"math"
	"sort"

	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/solve1"
	"github.com/rigidchain/ikanalytic/solve2"
	"github.com/rigidchain/ikanalytic/solvectx"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// State is the per-recursion-frame state machine spec §4.6 names:
// SELECTING_VAR -> SCORING -> COMMITTING -> (BRANCHING -> SELECTING_VAR) | DONE.
type State int

const (
	SelectingVar State = iota
	Scoring
	Committing
	Branching
	Done
)

func (s State) String() string {
	switch s {
	case SelectingVar:
		return "SELECTING_VAR"
	case Scoring:
		return "SCORING"
	case Committing:
		return "COMMITTING"
	case Branching:
		return "BRANCHING"
	case Done:
		return "DONE"
	}
	return "UNKNOWN"
}

// candidate is one scored proposal from a single-variable or pairwise
// strategy, carrying enough bookkeeping for scoring, committing and
// degenerate-branch analysis.
type candidate struct {
	node      tree.Node
	vars      []*sym.JointVar // variable(s) this candidate resolves
	score     float64
	guards    []sym.Expr // divide-by-zero checks (PostcheckForZeros)
	sanityEqs []sym.Expr // equations consumed to derive node, spec §5 addition
}

// Solve is the top-level recursive driver over eqs given the current
// variable-state bag ctx (spec §4.6). It never mutates eqs in place;
// each recursive call works over its own filtered/substituted copy.
func Solve(eqs []sym.Eq, ctx *solvectx.Context) (tree.Node, error) {
	state := SelectingVar
	var cands []candidate

	for {
		switch state {
		case SelectingVar:
			if len(ctx.CurVars) == 0 {
				return wrapVerification(eqs, ctx, &tree.StoreSolution{}), nil
			}
			if ctx.BudgetExceeded() {
				return nil, &ikerrors.BudgetExceededError{Elapsed: ctx.Elapsed().String()}
			}
			state = Scoring

		case Scoring:
			cands = collectCandidates(eqs, ctx)
			if len(cands) == 0 {
				return handleNoCandidates(eqs, ctx)
			}
			solvedNames, unsolvedNames := nameSets(ctx)
			for i := range cands {
				cands[i].score = scoreCandidate(cands[i], solvedNames, unsolvedNames)
			}
			sort.SliceStable(cands, func(i, j int) bool { return cands[i].score < cands[j].score })
			state = Committing

		case Committing:
			unguarded := withoutGuards(cands)
			if len(unguarded) == 0 {
				state = Branching
				continue
			}
			best := unguarded[0]
			if math.IsInf(best.score, 1) {
				return handleNoCandidates(eqs, ctx)
			}
			return commit(best, eqs, ctx)

		case Branching:
			node, err := handleDegenerateCases(cands, eqs, ctx)
			if err != nil {
				return nil, err
			}
			return node, nil
		}
	}
}

// collectCandidates implements §4.6 steps 1-3: single-unknown equations
// first, then unordered pairs, falling through to the half-angle
// strategy already embedded at the tail of solve1.Strategies.
func collectCandidates(eqs []sym.Eq, ctx *solvectx.Context) []candidate {
	var out []candidate

	for _, v := range ctx.CurVars {
		names := []string{v.ThetaName(), v.CosName(), v.SinName()}
		all := allCandidateNames(ctx.CurVars)
		var isolated []sym.Eq
		for _, e := range eqs {
			if sym.MentionsOnly(e, names, all) {
				isolated = append(isolated, e)
			}
		}
		if len(isolated) == 0 {
			continue
		}
		if n, ok := solve1.Solve(isolated, v); ok {
			out = append(out, candidate{node: n, vars: []*sym.JointVar{v}, guards: guardsOf(n), sanityEqs: isolated})
		}
	}

	for i := 0; i < len(ctx.CurVars); i++ {
		for j := i + 1; j < len(ctx.CurVars); j++ {
			v0, v1 := ctx.CurVars[i], ctx.CurVars[j]
			names := []string{v0.ThetaName(), v0.CosName(), v0.SinName(), v1.ThetaName(), v1.CosName(), v1.SinName()}
			all := allCandidateNames(ctx.CurVars)
			var coupled []sym.Eq
			for _, e := range eqs {
				if sym.MentionsOnly(e, names, all) {
					coupled = append(coupled, e)
				}
			}
			if len(coupled) == 0 {
				continue
			}
			if n, ok := solve2.Solve(coupled, v0, v1, ctx.Thresholds); ok {
				out = append(out, candidate{node: n, vars: []*sym.JointVar{v0, v1}, guards: guardsOf(n), sanityEqs: coupled})
			}
		}
	}

	return out
}

func allCandidateNames(vs []*sym.JointVar) []string {
	var names []string
	for _, v := range vs {
		names = append(names, v.ThetaName(), v.CosName(), v.SinName())
	}
	return names
}

// guardsOf extracts the divide-by-zero checks a leaf node carries (spec
// §4.4 "every emitted solution carries three check lists"), dropping any
// guard that is a known-nonzero constant: a strategy may record a
// divisor defensively even when it has already reduced to a bare
// nonzero rational (e.g. solve1.PureLinear's own coefficient), and such
// a guard can never actually degenerate at run time.
func guardsOf(n tree.Node) []sym.Expr {
	var raw []sym.Expr
	switch t := n.(type) {
	case *tree.Single:
		raw = t.Checks.PostcheckForZeros
	case *tree.PolynomialRoots:
		raw = t.PostCheck
	}
	var out []sym.Expr
	for _, g := range raw {
		if !isTrivialNonzeroGuard(g) {
			out = append(out, g)
		}
	}
	return out
}

// isTrivialNonzeroGuard reports whether e is a constant (no symbolic
// factors in any term) that is not itself zero — a divide guard that can
// never fire.
func isTrivialNonzeroGuard(e sym.Expr) bool {
	if e.IsZero() {
		return false
	}
	for _, t := range e.Terms() {
		if len(t.Fact) > 0 {
			return false
		}
	}
	return true
}

func withoutGuards(cands []candidate) []candidate {
	var out []candidate
	for _, c := range cands {
		if len(c.guards) == 0 && !math.IsInf(c.score, 1) {
			out = append(out, c)
		}
	}
	return out
}

// commit marks the candidate's variable(s) solved, substitutes the
// solution into the remaining equations, and recurses (spec §4.6 "pick
// the minimal-score candidate... recurse").
func commit(c candidate, eqs []sym.Eq, ctx *solvectx.Context) (tree.Node, error) {
	attachSanityEqs(c.node, c.sanityEqs)
	for _, v := range c.vars {
		ctx.MarkSolved(v, solvedPlaceholder(v))
	}
	rest, err := Solve(eqs, ctx)
	if err != nil {
		// An unsolvable tail does not discard this candidate outright;
		// the caller above (a degenerate branch or the top-level driver)
		// decides whether to retry with the next candidate.
		return nil, err
	}
	return chainNext(c.node, rest), nil
}

// attachSanityEqs records the equations a candidate was derived from
// onto its leaf node (spec §5 addition, recovered from the original's
// checkValidSolution bookkeeping), so a later per-leaf verification pass
// can re-check residuals without re-deriving which equations applied.
func attachSanityEqs(n tree.Node, eqs []sym.Expr) {
	switch t := n.(type) {
	case *tree.Single:
		t.SanityEqs = eqs
	case *tree.PolynomialRoots:
		t.SanityEqs = eqs
	}
}

// solvedPlaceholder is recorded in ctx.SolSubs as the substitution for a
// solved variable. The real closed form lives in the emitted tree node's
// Formula/Poly fields for the code generator to walk (spec §6); the
// ledger/MentionsOnly bookkeeping in this package only needs to know
// *that* v is solved, not its algebraic value, so a symbol referencing
// the joint itself is sufficient and keeps SolSubs from growing unsound
// non-polynomial entries (atan2/asin have no sym.Expr representation,
// spec §9 "Symbolic-algebra dependency").
func solvedPlaceholder(v *sym.JointVar) sym.Expr { return v.Theta }

// chainNext wires a leaf node's Next/tail field to the subtree solving
// the remaining variables.
func chainNext(n tree.Node, next tree.Node) tree.Node {
	switch t := n.(type) {
	case *tree.Single:
		t.Next = next
		return t
	case *tree.PolynomialRoots:
		t.Next = next
		return t
	case *tree.ConicRoots:
		t.Next = next
		return t
	}
	return &tree.Sequence{Steps: []tree.Node{n, next}}
}

// handleNoCandidates is reached when no single-variable or pairwise
// strategy fired at all for the current variable set (spec §7 "no
// strategy succeeds on an equation bag" — local failure, caught here).
func handleNoCandidates(eqs []sym.Eq, ctx *solvectx.Context) (tree.Node, error) {
	if ctx.Depth < ctx.Thresholds.MaxDegenerateDepth {
		if n, err := tryFreeParameterFallback(eqs, ctx); err == nil {
			return n, nil
		}
	}
	return nil, &ikerrors.UnsolvableError{
		Stage:  "orchestrate",
		Reason: "no single-variable or pairwise strategy produced a candidate",
		Tried:  []string{"solve1", "solve2"},
	}
}

// tryFreeParameterFallback promotes one still-unsolved variable to a
// FreeParameter when nothing else determines it (spec §3 "FreeParameter
// — mark a joint as user-supplied input"; seed scenario 3's spherical
// wrist with R=identity needs exactly this: θ2 free, θ1=0).
func tryFreeParameterFallback(eqs []sym.Eq, ctx *solvectx.Context) (tree.Node, error) {
	if len(ctx.CurVars) == 0 {
		return nil, &ikerrors.UnsolvableError{Stage: "orchestrate", Reason: "no curvars left to free"}
	}
	v := ctx.CurVars[len(ctx.CurVars)-1]
	child := ctx.Fork()
	child.MarkSolved(v, v.Theta)
	rest, err := Solve(eqs, child)
	if err != nil {
		return nil, err
	}
	ctx.MarkSolved(v, v.Theta)
	return &tree.FreeParameter{Var: v.ThetaName(), Next: rest}, nil
}

// wrapVerification collects every equation mentioning no unsolved
// variable (there are none left once CurVars is empty, so this is the
// full residual bag) and wraps leaf in a CheckZeros node requiring each
// to evaluate near zero at run time, else take the break branch (spec
// §4.6 "Verification").
func wrapVerification(eqs []sym.Eq, ctx *solvectx.Context, leaf tree.Node) tree.Node {
	var residual []sym.Expr
	for _, e := range eqs {
		residual = append(residual, e)
	}
	if len(residual) == 0 {
		return leaf
	}
	return &tree.CheckZeros{
		Guard:         residual,
		ZeroBranch:    leaf,
		NonzeroBranch: &tree.Break{},
	}
}

func nameSets(ctx *solvectx.Context) (solved, unsolved map[string]bool) {
	solved = make(map[string]bool, len(ctx.SolvedVars))
	for _, v := range ctx.SolvedVars {
		solved[v.ThetaName()] = true
	}
	unsolved = make(map[string]bool, len(ctx.CurVars))
	for _, v := range ctx.CurVars {
		unsolved[v.ThetaName()] = true
		unsolved[v.CosName()] = true
		unsolved[v.SinName()] = true
	}
	return
}
