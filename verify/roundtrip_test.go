// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/ik"
	"github.com/rigidchain/ikanalytic/ikinp"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/tree"
	"golang.org/x/exp/rand"
)

// cartesianChain is the three-orthogonal-prismatics fixture (seed
// scenario 2): each joint's Left matrix is a 90-degree axis permutation
// rotating the canonical local-Z prismatic direction onto x, y or z, so
// the end effector's position is exactly (j0,j1,j2) with an identity
// end rotation throughout.
const cartesianChain = `3
slider 1 0 0  1 0 0  1 0  solve
0 0 1 0
0 1 0 0
-1 0 0 0
1 0 0 0
0 1 0 0
0 0 1 0
slider 2 1 1  0 1 0  1 0  solve
0 1 0 0
0 0 1 0
1 0 0 0
1 0 0 0
0 1 0 0
0 0 1 0
slider 3 2 2  0 0 1  1 0  solve
1 0 0 0
0 0 -1 0
0 1 0 0
1 0 0 0
0 1 0 0
0 0 1 0
`

func buildCartesianFixture(tst *testing.T) (*kin.Chain, *tree.Chain, *config.Thresholds) {
	th := config.Default()
	joints, err := ikinp.ReadJointStream(strings.NewReader(cartesianChain))
	if err != nil {
		tst.Fatalf("ReadJointStream failed: %v\n", err)
	}
	req := ik.Request{BaseLink: 0, EndEffectorLink: 3, UseDummyJoints: false, Kind: tree.Translation3D}
	solved, err := ik.Solve(joints, req, ik.DefaultPose(), th)
	if err != nil {
		tst.Fatalf("ik.Solve failed: %v\n", err)
	}
	c, err := kin.BuildChain(joints, req.BaseLink, req.EndEffectorLink, req.UseDummyJoints)
	if err != nil {
		tst.Fatalf("kin.BuildChain failed: %v\n", err)
	}
	kin.PushTranslationLeft(c)
	kin.PushTranslationRight(c)
	return c, solved, th
}

func Test_roundtrip01(tst *testing.T) {

	chk.PrintTitle("roundtrip01. three orthogonal prismatics reproduce a fixed sample via FK->IK->FK")

	c, solved, th := buildCartesianFixture(tst)

	sample := Solution{"j0": 1.0, "j1": -2.0, "j2": 0.5}
	report, err := RoundTrip(c, solved, sample, th, 0)
	if err != nil {
		tst.Errorf("RoundTrip failed: %v\n", err)
		return
	}
	if !report.Matched {
		tst.Errorf("expected at least one solution to reproduce the sampled pose, best residue=%g\n", report.BestResidue)
		return
	}
	chk.AnaNum(tst, "best residue", 1e-6, report.BestResidue, 0, false)
}

func Test_roundtrip02(tst *testing.T) {

	chk.PrintTitle("roundtrip02. several random samples all round-trip")

	c, solved, th := buildCartesianFixture(tst)
	src := rand.NewSource(7)

	const trials = 8
	for i := 0; i < trials; i++ {
		sample := RandomJointSample(c, src)
		report, err := RoundTrip(c, solved, sample, th, 0)
		if err != nil {
			tst.Errorf("trial %d: RoundTrip failed: %v\n", i, err)
			continue
		}
		if !report.Matched {
			tst.Errorf("trial %d: sample %v did not round-trip, best residue=%g\n", i, sample, report.BestResidue)
		}
	}
}
