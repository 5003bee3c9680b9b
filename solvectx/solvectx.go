// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solvectx carries the variable-state bag spec.md §3 describes
// ("solvedvars"/"curvars"/"freevars"/"solsubs") through every solver
// layer, plus the shared config and degenerate-case ledger each strategy
// needs to consult. Grounded on gofem's fem.Domain, which plays the same
// role of a single mutable state bag threaded through assembly and
// solution routines rather than passed as a dozen loose arguments.
package solvectx

import (
	"time"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/ledger"
	"github.com/rigidchain/ikanalytic/sym"
)

// Context is the per-recursion-frame state spec.md §3/§5 describes:
// mutated in place by the current frame, cloned (via Fork) on entry to a
// speculative branch.
type Context struct {
	Thresholds *config.Thresholds

	SolvedVars []*sym.JointVar // already determined, usable as substitution
	CurVars    []*sym.JointVar // target of the current recursion step
	FreeVars   []*sym.JointVar // external inputs, substituted as opaque symbols

	SolSubs map[string]sym.Expr // running substitution map, keyed by symbol name

	Ledger *ledger.Ledger

	Depth     int
	StartedAt time.Time
}

// New builds the initial context for a fresh orchestration run.
func New(th *config.Thresholds, curVars, freeVars []*sym.JointVar) *Context {
	return &Context{
		Thresholds: th,
		CurVars:    curVars,
		FreeVars:   freeVars,
		SolSubs:    make(map[string]sym.Expr),
		Ledger:     ledger.New(),
		StartedAt:  time.Now(),
	}
}

// Fork clones the context for a speculative branch: SolvedVars/CurVars/
// FreeVars slices are copied shallowly (their *JointVar elements are
// immutable once built), SolSubs is copied, and the ledger is forked via
// its own O(1) structural-sharing Fork (spec §5 "cloned on entry to each
// speculative branch and restored on exit").
func (c *Context) Fork() *Context {
	n := &Context{
		Thresholds: c.Thresholds,
		SolvedVars: append([]*sym.JointVar(nil), c.SolvedVars...),
		CurVars:    append([]*sym.JointVar(nil), c.CurVars...),
		FreeVars:   c.FreeVars,
		SolSubs:    make(map[string]sym.Expr, len(c.SolSubs)),
		Ledger:     c.Ledger.Fork(),
		Depth:      c.Depth + 1,
		StartedAt:  c.StartedAt,
	}
	for k, v := range c.SolSubs {
		n.SolSubs[k] = v
	}
	return n
}

// Elapsed reports how long this run has been going, for the per-problem
// time budget check (spec §5, §9).
func (c *Context) Elapsed() time.Duration { return time.Since(c.StartedAt) }

// BudgetExceeded reports whether the configured per-problem wall-clock
// budget has been consumed.
func (c *Context) BudgetExceeded() bool {
	return c.Thresholds.PerProblemBudget > 0 && c.Elapsed() > c.Thresholds.PerProblemBudget
}

// MarkSolved moves v from CurVars into SolvedVars and records its
// substitution expression.
func (c *Context) MarkSolved(v *sym.JointVar, subst sym.Expr) {
	c.SolvedVars = append(c.SolvedVars, v)
	c.SolSubs[v.ThetaName()] = subst
	out := c.CurVars[:0]
	for _, cv := range c.CurVars {
		if cv.Index != v.Index {
			out = append(out, cv)
		}
	}
	c.CurVars = out
}

// IsFree reports whether v is one of the declared free variables.
func (c *Context) IsFree(v *sym.JointVar) bool {
	for _, f := range c.FreeVars {
		if f.Index == v.Index {
			return true
		}
	}
	return false
}
