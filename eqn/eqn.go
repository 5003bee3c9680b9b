// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqn is the equation generator (spec.md §4.2, 12% share): given
// a kin.Chain's accumulated transforms, it builds position, rotation and
// length equality systems, plus the fourteen Raghavan–Roth polynomial
// equalities, filters them for uniqueness modulo sign and simplifies
// those below the configured complexity budget. Grounded on gofem's
// ele/solution.go-style equation-assembly: both walk a fixed structural
// layout (elements/cut-points) and push scalar residual equations into a
// flat bag for a downstream solver to consume.
package eqn

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rigidchain/ikanalytic/chop"
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
)

// PositionEquations builds, for cut point i, the three coordinate
// equations `R_i·P + t_i = R_i'·P_ee + t_i'` plus the length equation
// `|Pos|² = |Pos_ee|²` (spec §4.2).
func PositionEquations(acc *kin.Accumulators, i int, eePos [3]sym.Expr, th *config.Thresholds) []sym.Eq {
	left := acc.LeftAll[i]
	var eqs []sym.Eq
	lhs := make([]sym.Expr, 3)
	for r := 0; r < 3; r++ {
		lhs[r] = left.PosEntry(r)
	}
	for r := 0; r < 3; r++ {
		eqs = append(eqs, lhs[r].Sub(eePos[r]))
	}

	lenLHS := sym.Zero()
	lenRHS := sym.Zero()
	for r := 0; r < 3; r++ {
		lenLHS = lenLHS.Add(sym.Mul(lhs[r], lhs[r]))
		lenRHS = lenRHS.Add(sym.Mul(eePos[r], eePos[r]))
	}
	eqs = append(eqs, lenLHS.Sub(lenRHS))

	return simplifyBudgeted(eqs, th)
}

// RotationEquations builds the nine (row/column) rotation-block equality
// equations between the accumulated transform at cut point i and the
// declared end-effector rotation (spec §4.2 "rotation equations column-
// or row-wise equalities").
func RotationEquations(acc *kin.Accumulators, i int, eeRot [3][3]sym.Expr, th *config.Thresholds) []sym.Eq {
	left := acc.LeftAll[i]
	var eqs []sym.Eq
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			eqs = append(eqs, left.RotEntry(r, c).Sub(eeRot[r][c]))
		}
	}
	return simplifyBudgeted(eqs, th)
}

// simplifyBudgeted trig-simplifies and chops every equation whose
// symbolic complexity is below the configured node budget, leaving
// heavier equations untouched to avoid CAS thrashing (spec §4.2), then
// filters the whole bag for uniqueness modulo sign.
func simplifyBudgeted(eqs []sym.Eq, th *config.Thresholds) []sym.Eq {
	ids := trigIdentities(eqs)
	out := make([]sym.Eq, len(eqs))
	for i, e := range eqs {
		if sym.Complexity(e) <= th.EquationComplexityBudget {
			e = sym.TrigSimplify(e, ids)
			e = chop.Expr(e, th.ChopAccuracy)
		}
		out[i] = e
	}
	return chop.Unique(out)
}

var sinSymbolPattern = regexp.MustCompile(`^s(\d+)$`)

// trigIdentities discovers which joint-var sin symbols appear in eqs
// and builds one s_i*s_i -> 1-c_i*c_i rewrite per index found, the
// Pythagorean identity spec §4.2 asks the generator to inject ("trig-
// simplification with s²→1−c²"). This is sym.JointVar.InjectPythagorean's
// rule expressed as a sym.Identity list instead of a per-variable method
// call, so simplifyBudgeted can apply it via the general sym.TrigSimplify
// rewriter without needing a *sym.JointVar for every joint in scope.
func trigIdentities(eqs []sym.Eq) []sym.Identity {
	seen := make(map[string]bool)
	var ids []sym.Identity
	for _, e := range eqs {
		for _, t := range e.Terms() {
			for _, f := range t.Fact {
				name, _ := sym.FactorBase(f)
				m := sinSymbolPattern.FindStringSubmatch(name)
				if m == nil || seen[name] {
					continue
				}
				seen[name] = true
				idx, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				id, err := sym.NewIdentity(
					fmt.Sprintf("s%d*s%d", idx, idx),
					fmt.Sprintf("1-c%d*c%d", idx, idx),
				)
				if err == nil {
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}
