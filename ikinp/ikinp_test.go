// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ikinp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/rigidchain/ikanalytic/kin"
)

const twoJointStream = `2
hinge 1 0 0  0 0 1  1 0  solve
1 0 0 0
0 1 0 0
0 0 1 0
1 0 0 0
0 1 0 0
0 0 1 1
slider 2 1 1  0 0 1  1 0  solve
1 0 0 0
0 1 0 0
0 0 1 0
1 0 0 0
0 1 0 0
0 0 1 0
`

func Test_readjointstream01(tst *testing.T) {

	chk.PrintTitle("readjointstream01. two-joint stream decodes")

	joints, err := ReadJointStream(strings.NewReader(twoJointStream))
	if err != nil {
		tst.Errorf("ReadJointStream failed: %v\n", err)
		return
	}
	chk.IntAssert(len(joints), 2)
	if joints[0].Type != kin.Hinge {
		tst.Errorf("expected joint 0 to be a hinge, got %v\n", joints[0].Type)
	}
	if joints[1].Type != kin.Prismatic {
		tst.Errorf("expected joint 1 to be prismatic, got %v\n", joints[1].Type)
	}
	if joints[0].Role != kin.RoleSolve || joints[1].Role != kin.RoleSolve {
		tst.Errorf("expected both joints to be role=solve\n")
	}
	z := joints[0].Right.PosEntry(2)
	if z.IsZero() {
		tst.Errorf("expected a non-zero right matrix translation z, got %v\n", z)
	}
}

func Test_readjointstream02(tst *testing.T) {

	chk.PrintTitle("readjointstream02. bad joint type is an input error")

	_, err := ReadJointStream(strings.NewReader("1\nbogus 0 0 0 0 0 1 1 0 solve\n"))
	if err == nil {
		tst.Errorf("expected an error for an unsupported joint type\n")
	}
}

func Test_readjointstream03(tst *testing.T) {

	chk.PrintTitle("readjointstream03. truncated stream is an input error")

	_, err := ReadJointStream(strings.NewReader("1\nhinge 1 0 0"))
	if err == nil {
		tst.Errorf("expected an error for a truncated record\n")
	}
}
