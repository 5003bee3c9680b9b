// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"math"
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rigidchain/ikanalytic/sym"
)

func Test_conic01(tst *testing.T) {

	chk.PrintTitle("conic01. c0 - 0.5 = 0 has roots at +-pi/3")

	poly := sym.Symbol("c0").Sub(sym.Rational(1, 2))
	roots, err := ConicAngles(poly, "c0", "s0", nil)
	if err != nil {
		tst.Errorf("ConicAngles failed: %v\n", err)
		return
	}
	chk.IntAssert(len(roots), 2)
	sort.Float64s(roots)
	chk.AnaNum(tst, "theta_lo", 1e-4, roots[0], -math.Pi/3, false)
	chk.AnaNum(tst, "theta_hi", 1e-4, roots[1], math.Pi/3, false)
}

func Test_conic02(tst *testing.T) {

	chk.PrintTitle("conic02. s0 - c0 = 0 has roots at pi/4 and -3pi/4")

	poly, err := sym.Parse("s0-c0")
	if err != nil {
		tst.Errorf("sym.Parse failed: %v\n", err)
		return
	}
	roots, err := ConicAngles(poly, "c0", "s0", nil)
	if err != nil {
		tst.Errorf("ConicAngles failed: %v\n", err)
		return
	}
	chk.IntAssert(len(roots), 2)
	sort.Float64s(roots)
	chk.AnaNum(tst, "theta_lo", 1e-4, roots[0], -3*math.Pi/4, false)
	chk.AnaNum(tst, "theta_hi", 1e-4, roots[1], math.Pi/4, false)
}
