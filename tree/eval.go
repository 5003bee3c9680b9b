// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math"

	"github.com/rigidchain/ikanalytic/sym"
)

// EvalFormula numerically interprets a Formula against a binding of every
// symbol its FAtom leaves mention (the same vals map sym.Eval takes),
// reconstructing the runtime value the external code generator would
// compute at that node. This is the reference numeric reduction the
// verify package's round-trip checks (spec §8) replay against each
// Single/PolynomialRoots leaf; it never runs inside the core itself.
func EvalFormula(f Formula, vals map[string]float64) (float64, error) {
	switch f.Kind {
	case FAtom:
		return sym.Eval(f.Leaf, vals)
	case FAtan2:
		y, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		x, err := EvalFormula(f.Args[1], vals)
		if err != nil {
			return 0, err
		}
		return math.Atan2(y, x), nil
	case FAtan:
		x, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		return math.Atan(x), nil
	case FAsin:
		x, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		if x > 1 {
			x = 1
		}
		if x < -1 {
			x = -1
		}
		return math.Asin(x), nil
	case FAcos:
		x, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		if x > 1 {
			x = 1
		}
		if x < -1 {
			x = -1
		}
		return math.Acos(x), nil
	case FSqrt:
		x, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		if x < 0 {
			return 0, fmt.Errorf("tree: EvalFormula: sqrt of negative %g", x)
		}
		return math.Sqrt(x), nil
	case FAdd:
		a, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		b, err := EvalFormula(f.Args[1], vals)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	case FSub:
		a, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		b, err := EvalFormula(f.Args[1], vals)
		if err != nil {
			return 0, err
		}
		return a - b, nil
	case FNeg:
		a, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		return -a, nil
	case FMulConst:
		a, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		k, err := sym.Eval(f.Leaf, vals)
		if err != nil {
			return 0, err
		}
		return a * k, nil
	case FDiv:
		num, err := EvalFormula(f.Args[0], vals)
		if err != nil {
			return 0, err
		}
		den, err := EvalFormula(f.Args[1], vals)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, fmt.Errorf("tree: EvalFormula: division by zero")
		}
		return num / den, nil
	}
	return 0, fmt.Errorf("tree: EvalFormula: unknown formula kind %d", f.Kind)
}

// piValue is substituted for the bare "pi" atom LinearCombo's
// supplementary-solution formula introduces (tree.Atom(sym.Symbol("pi"))).
const piValue = math.Pi

// WithPi returns vals augmented with the "pi" binding every Formula built
// from tree.Atom(sym.Symbol("pi")) requires; callers of EvalFormula that
// might encounter a supplementary-angle formula should pass its result
// through this rather than hand-building the entry themselves.
func WithPi(vals map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(vals)+1)
	for k, v := range vals {
		out[k] = v
	}
	out["pi"] = piValue
	return out
}
