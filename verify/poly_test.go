// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_realroots01(tst *testing.T) {

	chk.PrintTitle("realroots01. (x-1)(x-2) has roots 1 and 2")

	// x^2 - 3x + 2, ascending-degree coefficients
	roots, err := RealRoots([]float64{2, -3, 1})
	if err != nil {
		tst.Errorf("RealRoots failed: %v\n", err)
		return
	}
	chk.IntAssert(len(roots), 2)
	sort.Float64s(roots)
	chk.AnaNum(tst, "root0", 1e-8, roots[0], 1, false)
	chk.AnaNum(tst, "root1", 1e-8, roots[1], 2, false)
}

func Test_realroots02(tst *testing.T) {

	chk.PrintTitle("realroots02. linear polynomial 2x - 6 has root 3")

	roots, err := RealRoots([]float64{-6, 2})
	if err != nil {
		tst.Errorf("RealRoots failed: %v\n", err)
		return
	}
	chk.IntAssert(len(roots), 1)
	chk.AnaNum(tst, "root", 1e-8, roots[0], 3, false)
}

func Test_realroots03(tst *testing.T) {

	chk.PrintTitle("realroots03. x^2+1 has no real roots")

	roots, err := RealRoots([]float64{1, 0, 1})
	if err != nil {
		tst.Errorf("RealRoots failed: %v\n", err)
		return
	}
	chk.IntAssert(len(roots), 0)
}
