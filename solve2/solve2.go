// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve2 is the pairwise solver (spec.md §4.4, 20% share): given
// equations coupling two hinge joint variables θ0, θ1, it substitutes
// (c0,s0,c1,s1) as independent symbols, applies s²→1-c², and tries six
// strategies in order. Grounded the same way solve1 is: a fixed
// try-in-order stack of standalone functions, following gofem's
// strategy-table idiom.
package solve2

import (
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/solve1"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// Strategy is one entry of the §4.4 stack.
type Strategy func(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool)

// Strategies is the fixed try-in-order stack spec §4.4 lists; strategy 3
// ("separation, fall back to 4.3") is the Separation entry, which calls
// into the solve1 stack itself.
var Strategies = []Strategy{
	MonomialPairing,
	ReductionLoop,
	Separation,
	MagicSquare,
	QuarticWeierstrass,
	ConicFallback,
}

// Solve tries each strategy in order and returns the first success whose
// result carries no invalid coefficient.
func Solve(eqs []sym.Eq, v0, v1 *sym.JointVar, th *config.Thresholds) (tree.Node, bool) {
	injected := make([]sym.Eq, len(eqs))
	for i, e := range eqs {
		injected[i] = v1.InjectPythagorean(v0.InjectPythagorean(e))
	}
	for _, s := range Strategies {
		if s == nil {
			continue
		}
		n, ok := s(injected, v0, v1, th)
		if !ok {
			continue
		}
		if leafIsInvalid(n) {
			continue
		}
		return n, true
	}
	return nil, false
}

func leafIsInvalid(n tree.Node) bool {
	switch t := n.(type) {
	case *tree.PolynomialRoots:
		for _, c := range t.Poly {
			if sym.IsInvalid(c) {
				return true
			}
		}
	case *tree.ConicRoots:
		return sym.IsInvalid(t.Poly)
	}
	return false
}
