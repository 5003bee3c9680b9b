// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve2

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/sym"
)

func Test_separation01(tst *testing.T) {

	chk.PrintTitle("separation01. one equation isolates v0 alone")

	v0 := sym.NewJointVar(0)
	v1 := sym.NewJointVar(1)
	e0, _ := sym.Parse(v0.ThetaName() + "-3")
	e1, _ := sym.Parse(v1.ThetaName() + "-4")
	n, ok := Separation([]sym.Eq{e0, e1}, v0, v1, config.Default())
	if !ok {
		tst.Errorf("expected Separation to fire\n")
		return
	}
	if n == nil {
		tst.Errorf("expected non-nil node\n")
	}
}

func Test_conicfallback01(tst *testing.T) {

	chk.PrintTitle("conicfallback01. last-resort conic emission")

	v1 := sym.NewJointVar(1)
	e, _ := sym.Parse(v1.CosName() + "+" + v1.SinName() + "-1")
	n, ok := ConicFallback([]sym.Eq{e}, sym.NewJointVar(0), v1, config.Default())
	if !ok {
		tst.Errorf("expected ConicFallback to fire\n")
	}
	if n == nil {
		tst.Errorf("expected non-nil node\n")
	}
}
