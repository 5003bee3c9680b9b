// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrate

import (
	"math"

	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// Scoring weights from spec §4.6 "Scoring": 400·k + Σ complexity(expr),
// plus per-guard penalties depending on whether the guard mentions only
// already-solved variables or still-unsolved ones.
const (
	branchWeight        = 400.0
	solvedGuardPenalty  = 1e4
	unsolvedGuardPenalty = 1e5
)

// scoreCandidate implements spec §4.6's scoring formula. Invalid
// expressions (NaN/Inf/imaginary unit, spec §4.3/§7) score +Inf so the
// orchestrator discards them outright.
func scoreCandidate(c candidate, solvedNames, unsolvedNames map[string]bool) float64 {
	branches, complexity, invalid := candidateShape(c.node)
	if invalid {
		return math.Inf(1)
	}
	score := branchWeight*float64(branches) + complexity
	for _, g := range c.guards {
		if sym.IsInvalid(g) {
			return math.Inf(1)
		}
		if mentionsAny(g, unsolvedNames) {
			score += unsolvedGuardPenalty
		} else if mentionsAny(g, solvedNames) {
			score += solvedGuardPenalty
		}
	}
	return score
}

// candidateShape extracts the branch count k and total expression
// complexity a leaf node contributes to its own score, plus whether any
// of its algebraic content is invalid.
func candidateShape(n tree.Node) (branches int, complexity float64, invalid bool) {
	switch t := n.(type) {
	case *tree.Single:
		branches = len(t.Exprs)
		if branches == 0 {
			branches = 1
		}
		for _, f := range t.Exprs {
			c, bad := formulaComplexity(f)
			complexity += float64(c)
			invalid = invalid || bad
		}
	case *tree.PolynomialRoots:
		branches = degreeOf(t.Poly)
		if branches == 0 {
			branches = 1
		}
		for _, coeff := range t.Poly {
			complexity += float64(sym.Complexity(coeff))
			invalid = invalid || sym.IsInvalid(coeff)
		}
	case *tree.ConicRoots:
		branches = 2 // unit-circle intersection yields up to two roots
		complexity = float64(sym.Complexity(t.Poly))
		invalid = sym.IsInvalid(t.Poly)
	default:
		branches = 1
	}
	return
}

// degreeOf returns the highest index with a non-zero coefficient, the
// polynomial's degree (spec §3 "PolynomialRoots... whose real roots
// yield θ" — degree bounds the branch count).
func degreeOf(poly []sym.Expr) int {
	deg := 0
	for i, c := range poly {
		if !c.IsZero() {
			deg = i
		}
	}
	return deg
}

// formulaComplexity sums sym.Complexity over every leaf atom of a
// Formula tree, and reports whether any leaf is invalid.
func formulaComplexity(f tree.Formula) (complexity int, invalid bool) {
	if f.Kind == tree.FAtom {
		return sym.Complexity(f.Leaf), sym.IsInvalid(f.Leaf)
	}
	for _, a := range f.Args {
		c, bad := formulaComplexity(a)
		complexity += c
		invalid = invalid || bad
	}
	return
}

func mentionsAny(e sym.Expr, names map[string]bool) bool {
	for name := range names {
		if sym.Mentions(e, name) {
			return true
		}
	}
	return false
}
