// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ikerrors defines the three failure families of spec.md §7:
// input errors, unsolvable subproblems, and budget exhaustion. Numeric
// near-singularities are deliberately not an error type here — spec.md
// treats them as invalid candidates scored at +Inf (see sym.IsInvalid),
// not as a Go error.
package ikerrors

import (
	"errors"
	"fmt"
)

// InputError reports malformed joint streams, joint-graph cycles,
// unsupported joint types or a solve-joint count mismatch (spec §6, §7).
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "ikanalytic: input error: " + e.Reason }

// NewInputError builds an *InputError with a formatted reason.
func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// UnsolvableError reports that no strategy in solve1/solve2/rotsolve
// could resolve an equation bag, and the orchestrator exhausted the
// candidate/pair/half-angle escalation and the one inversion retry.
type UnsolvableError struct {
	Stage   string // e.g. "single-variable", "pairwise", "rotation"
	Reason  string
	Tried   []string // strategies attempted, in order
	Inverse bool     // true if this failure is reported after the inversion retry
}

func (e *UnsolvableError) Error() string {
	if e.Inverse {
		return fmt.Sprintf("ikanalytic: unsolvable at %s after chain inversion retry: %s (tried: %v)", e.Stage, e.Reason, e.Tried)
	}
	return fmt.Sprintf("ikanalytic: unsolvable at %s: %s (tried: %v)", e.Stage, e.Reason, e.Tried)
}

// BudgetExceededError reports that config.Thresholds.PerProblemBudget
// elapsed before the orchestrator reached a DONE state (spec §5).
type BudgetExceededError struct {
	Elapsed string
}

func (e *BudgetExceededError) Error() string {
	return "ikanalytic: per-problem time budget exceeded after " + e.Elapsed
}

// IsUnsolvable reports whether err is (or wraps) an *UnsolvableError.
func IsUnsolvable(err error) bool {
	var ue *UnsolvableError
	return errors.As(err, &ue)
}

// IsInputError reports whether err is (or wraps) an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
