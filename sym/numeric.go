// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"fmt"
	"math"
)

// FromFloat builds an exact rational Expr from x, rounded to five
// decimal places before being promoted to extended (big.Rat-backed)
// precision internally (spec §6 "Input to the core": "the reader rounds
// to five decimals and promotes to extended precision internally").
func FromFloat(x float64) Expr {
	const scale = 1e5
	num := int64(math.Round(x * scale))
	return Rational(num, scale)
}

// Eval numerically evaluates x given a binding of every symbol factor
// it mentions to a float64, summing coefficient*product(factors) term
// by term the same way chop.Expr walks Terms(). Used by verify's
// numeric FK round-trip (spec §8), the one place the core needs an
// actual number rather than a symbolic residual.
func Eval(x Expr, vals map[string]float64) (float64, error) {
	sum := 0.0
	for _, t := range x.Terms() {
		c, _ := t.Coeff.Float64()
		for _, f := range t.Fact {
			name, exp := FactorBase(f)
			v, ok := vals[name]
			if !ok {
				return 0, fmt.Errorf("sym: Eval: no binding for symbol %q", name)
			}
			c *= math.Pow(v, float64(exp))
		}
		sum += c
	}
	return sum, nil
}
