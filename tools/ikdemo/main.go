// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ikdemo drives one end-to-end pass of the core over a built-in
// example chain: build it, solve it, sample a random configuration, run
// the round-trip property spec §8 describes, and report the outcome.
// Grounded on gofem's tools/LocCmDriver.go: a small main that reads an
// input description, runs the library end to end, and prints a diagnostic
// table of what happened, rather than wiring a full command framework.
package main

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"golang.org/x/exp/rand"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/ik"
	"github.com/rigidchain/ikanalytic/ikinp"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/tree"
	"github.com/rigidchain/ikanalytic/verify"
)

// cartesianChain is seed scenario 2 (spec §8): three orthogonal
// prismatics along x, y, z, expressed in the flat joint-stream record
// format ikinp.ReadJointStream decodes (spec §6). Each joint's Left
// matrix is a 90-degree axis permutation rotating the canonical
// local-Z prismatic direction onto the desired world axis, composed so
// that consecutive joints' frames return to the identity orientation
// once both rotations are applied (package verify's round-trip tests
// use this same chain as their fixture).
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

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	th := config.Default()

	joints, err := ikinp.ReadJointStream(strings.NewReader(cartesianChain))
	if err != nil {
		io.PfRed("cannot decode built-in joint stream: %v\n", err)
		return
	}

	req := ik.Request{BaseLink: 0, EndEffectorLink: 3, UseDummyJoints: false, Kind: tree.Translation3D}
	pose := ik.DefaultPose()

	solved, err := ik.Solve(joints, req, pose, th)
	if err != nil {
		io.PfRed("ik.Solve failed: %v\n", err)
		return
	}
	io.Pf("solved: chain kind=%v, root node type=%T\n", solved.Kind, solved.Root)

	c, err := kin.BuildChain(joints, req.BaseLink, req.EndEffectorLink, req.UseDummyJoints)
	if err != nil {
		io.PfRed("kin.BuildChain failed: %v\n", err)
		return
	}
	kin.RebalanceTranslations(c)

	src := rand.NewSource(1)
	const trials = 5
	matched := 0
	for i := 0; i < trials; i++ {
		sample := verify.RandomJointSample(c, src)
		report, err := verify.RoundTrip(c, solved, sample, th, 0)
		if err != nil {
			io.PfRed("trial %d: RoundTrip failed: %v\n", i, err)
			continue
		}
		io.Pf("trial %d: sampled=%v solutions=%d matched=%v best residue=%.3e\n",
			i, sample, len(report.Solutions), report.Matched, report.BestResidue)
		if report.Matched {
			matched++
		}
	}
	io.Pf("%d/%d trials reproduced the sampled pose within tolerance\n", matched, trials)
}
