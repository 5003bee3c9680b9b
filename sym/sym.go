// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sym is the symbolic algebra facade (spec.md §4.1, 10% share).
// It wraps zappem.net/math/algex — the same library
// other_examples/..._tinkerator-algex__examples-ik.go.go uses to derive
// closed-form inverse kinematics for a 6R arm — giving the rest of the
// solver pipeline expression trees, rational coefficients and symbolic
// matrices without hand-rolling a CAS.
package sym

import (
	"fmt"
	"strconv"
	"strings"

	"zappem.net/math/algex/factor"
	"zappem.net/math/algex/terms"
)

// Expr is a symbolic expression meant to equal zero once solved, or an
// intermediate value inside one (spec §3 "Equation"). The zero value is
// not usable; build one with Zero, One, Symbol or Rational.
type Expr struct {
	e *terms.Exp
}

// Raw exposes the wrapped *terms.Exp for packages that need to hand an
// expression straight to algex (e.g. kin's use of matrix.Matrix.Set).
func (x Expr) Raw() *terms.Exp { return x.e }

// FromRaw wraps an existing *terms.Exp.
func FromRaw(e *terms.Exp) Expr { return Expr{e: e} }

// Zero returns the additive identity.
func Zero() Expr { return Expr{e: terms.NewExp()} }

// One returns the multiplicative identity.
func One() Expr { return Rational(1, 1) }

// Rational builds a constant num/den expression.
func Rational(num, den int64) Expr {
	return Expr{e: terms.NewExp([]factor.Value{factor.D(num, den)})}
}

// Symbol builds a single opaque symbol, e.g. "j0", "c1", "px".
func Symbol(name string) Expr {
	return Expr{e: terms.NewExp([]factor.Value{factor.S(name)})}
}

// Parse parses an algex expression string, e.g. "c0*c1-s0*s1".
func Parse(s string) (Expr, error) {
	e, err := terms.ParseExp(s)
	if err != nil {
		return Expr{}, fmt.Errorf("sym: parse %q: %w", s, err)
	}
	return Expr{e: e}, nil
}

// Add returns x+y.
func (x Expr) Add(y Expr) Expr { return Expr{e: x.e.Add(y.e)} }

// Sub returns x-y.
func (x Expr) Sub(y Expr) Expr { return Expr{e: x.e.Sub(y.e)} }

// Mul returns the product of all operands; Mul() returns One().
func Mul(xs ...Expr) Expr {
	if len(xs) == 0 {
		return One()
	}
	raw := make([]*terms.Exp, len(xs))
	for i, x := range xs {
		raw[i] = x.e
	}
	return Expr{e: terms.Mul(raw...)}
}

// Neg returns -x.
func (x Expr) Neg() Expr { return Mul(x, Rational(-1, 1)) }

// IsZero reports whether x is the zero expression (spec's equality
// predicate for an "equation"; an Eq is satisfied when its Expr IsZero).
func (x Expr) IsZero() bool { return x.e.IsZero() }

// String renders the expression using algex's own formatter.
func (x Expr) String() string { return x.e.String() }

// Common factors out the greatest common factor.Value shared by xs,
// mirroring the refactoring step in the algex IK example (splitUp /
// showCleaner use exactly this to keep denominators minimal).
func Common(xs ...Expr) (factor.Value, bool) {
	raw := make([]*terms.Exp, len(xs))
	for i, x := range xs {
		raw[i] = x.e
	}
	c := terms.Common(raw...)
	if c.Fact == nil {
		return nil, false
	}
	return c.Fact, true
}

// Inv returns the multiplicative inverse of a single factor, usable as
// the operand list of an Expr built via FromFactors.
func Inv(f factor.Value) []factor.Value { return factor.Inv(f) }

// FromFactors builds a single-term expression from a product of factors,
// e.g. the result of Inv.
func FromFactors(fs []factor.Value) Expr { return Expr{e: terms.NewExp(fs)} }

// Substitute replaces every occurrence of pattern with repl.
func (x Expr) Substitute(pattern factor.Value, repl Expr) Expr {
	return Expr{e: x.e.Substitute(pattern, repl.e)}
}

// ParseFactor parses a single monomial pattern such as "c0*c0", for use
// with Substitute (e.g. injecting the Pythagorean identity).
func ParseFactor(s string) (factor.Value, error) {
	f, _, err := factor.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("sym: parse factor %q: %w", s, err)
	}
	return f, nil
}

// Terms exposes the additive terms of x, each a coefficient and a
// product of factors — used by Complexity, chop and the pairwise
// solver's monomial-pairing step.
func (x Expr) Terms() map[string]terms.Term { return x.e.Terms() }

// Complexity is a cheap proxy for expression size: total factor count
// summed across all terms, plus one per term for the coefficient. Used
// by eqn's 1500-node simplification budget (spec §4.2) and by the
// orchestrator's scoring function (spec §4.6).
func Complexity(x Expr) int {
	n := 0
	for _, t := range x.Terms() {
		n++
		n += len(t.Fact)
	}
	return n
}

// IsInvalid reports whether x's textual form contains a marker of an
// unsound derivation step: the imaginary unit, NaN or infinity (spec
// §4.3, §7 — "Treated as invalid solutions; scored at ∞").
func IsInvalid(x Expr) bool {
	s := x.String()
	for _, bad := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		if strings.Contains(s, bad) {
			return true
		}
	}
	return containsImaginaryUnit(s)
}

// containsImaginaryUnit looks for a bare "I" token (algex's convention
// for sqrt(-1) appearing after an ill-posed sqrt(negative) reduction),
// being careful not to false-positive on ordinary symbol names.
func containsImaginaryUnit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != 'I' {
			continue
		}
		leftOK := i == 0 || !isIdentChar(s[i-1])
		rightOK := i == len(s)-1 || !isIdentChar(s[i+1])
		if leftOK && rightOK {
			return true
		}
	}
	return false
}

func isIdentChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Eq is an Expr meant to equal zero (spec §3 "Equation. A symbolic
// expression meant to equal zero. Tagged implicitly by which joint
// variables it mentions."); the tagging is implicit via Mentions below
// rather than a stored field, matching the spec's own wording.
type Eq = Expr

// FactorBase splits a factor.Value's string form into its symbol name
// and exponent. algex normalises a repeated-symbol product (e.g.
// c0*c0) into one factor.Value per Term.Fact entry rather than
// repeating the factor, stringifying it "name^exp"; a bare symbol has
// no caret and exponent 1. Every caller that needs to know whether a
// term mentions a symbol, and to what power, parses this instead of
// comparing f.String() to the bare name.
func FactorBase(f factor.Value) (name string, exp int) {
	s := f.String()
	if i := strings.IndexByte(s, '^'); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i], n
		}
	}
	return s, 1
}

// Mentions reports whether e contains the symbol name anywhere in its
// term factors — the "implicit tagging" spec §3 describes for deciding
// which joint variables an equation couples.
func Mentions(e Expr, name string) bool {
	for _, t := range e.Terms() {
		for _, f := range t.Fact {
			if base, _ := FactorBase(f); base == name {
				return true
			}
		}
	}
	return false
}

// MentionsOnly reports whether e mentions at least one of names and no
// symbol outside that set among the given candidate variable names —
// used to find "equations that mention it but no other unknown" (spec
// §4.6 step 1).
func MentionsOnly(e Expr, names []string, allCandidates []string) bool {
	any := false
	for _, n := range names {
		if Mentions(e, n) {
			any = true
			break
		}
	}
	if !any {
		return false
	}
	for _, c := range allCandidates {
		if containsString(names, c) {
			continue
		}
		if Mentions(e, c) {
			return false
		}
	}
	return true
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
