// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/rigidchain/ikanalytic/sym"

// Formula is the tiny runtime-expression language a Single/PolynomialRoots
// leaf's closed form is built from. sym.Expr alone cannot hold it: algex
// is a polynomial/rational-function CAS with no atan2/asin/sqrt node, yet
// spec.md §4.3's strategies 2 and 3 close over exactly those functions
// (`θ = atan2(s,c)`, `θ = −atan2(a,b) + asin(−c/√(a²+b²))`). Formula
// wraps opaque algebraic leaves (FAtom) with the handful of runtime
// operations the external code generator must emit a call for.
type FormulaKind int

const (
	FAtom FormulaKind = iota
	FAtan2
	FAtan
	FAsin
	FAcos
	FSqrt
	FAdd
	FSub
	FNeg
	FMulConst // Args[0] scaled by a constant carried in Leaf
	FDiv      // Args[0] / Args[1], the divisor a caller must also list in a CheckList.PostcheckForZeros
)

// Formula is a small expression tree; Leaf holds the expression when
// Kind == FAtom and the constant factor when Kind == FMulConst, and Args
// holds the operands of every kind except FAtom.
type Formula struct {
	Kind FormulaKind
	Args []Formula
	Leaf sym.Expr
}

func Atom(e sym.Expr) Formula { return Formula{Kind: FAtom, Leaf: e} }

func Atan2(y, x Formula) Formula   { return Formula{Kind: FAtan2, Args: []Formula{y, x}} }
func Atan(x Formula) Formula       { return Formula{Kind: FAtan, Args: []Formula{x}} }
func Asin(x Formula) Formula       { return Formula{Kind: FAsin, Args: []Formula{x}} }
func Acos(x Formula) Formula       { return Formula{Kind: FAcos, Args: []Formula{x}} }
func Sqrt(x Formula) Formula       { return Formula{Kind: FSqrt, Args: []Formula{x}} }
func FormAdd(a, b Formula) Formula { return Formula{Kind: FAdd, Args: []Formula{a, b}} }
func FormSub(a, b Formula) Formula { return Formula{Kind: FSub, Args: []Formula{a, b}} }
func FormNeg(a Formula) Formula    { return Formula{Kind: FNeg, Args: []Formula{a}} }

// MulConst scales x by a rational constant, e.g. 2*atan(u) in the
// half-angle recovery θ = 2·atan(u) (spec §4.3 strategy 5).
func MulConst(x Formula, num, den int64) Formula {
	return Formula{Kind: FMulConst, Args: []Formula{x}, Leaf: sym.Rational(num, den)}
}

// Div builds num/den. Every strategy that closes over a division (spec
// §4.3's "-b/a" inversion, "/(2a)" quadratic roots) must also record the
// divisor in the Single/PolynomialRoots node's CheckList.PostcheckForZeros,
// so the orchestrator's scoring and the runtime guard agree on what must
// stay nonzero.
func Div(num, den Formula) Formula { return Formula{Kind: FDiv, Args: []Formula{num, den}} }
