// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"
	"math"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/tree"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// RoundTripReport is the outcome of one FK -> IK -> FK property check
// (spec §8): the sampled joint values, every solution the generated tree
// produced, and whether at least one of them reproduced the pose.
type RoundTripReport struct {
	Sampled     Solution
	SourcePose  Pose
	Solutions   []Solution
	Matched     bool
	BestResidue float64 // smallest max-component error across all candidate solutions
}

// poseTolerance is the default agreement threshold between the sampled
// pose and a solution's recomputed pose (spec §8 "within a small
// numerical tolerance").
const poseTolerance = 1e-6

// RandomJointSample draws one uniformly random value per solve/free
// variable in c, over (-π,π], using gonum's distuv.Uniform the way spec
// §8's property test needs a source of arbitrary-but-valid configurations
// to round-trip. rng is a caller-owned source so repeated calls during one
// property-test run are reproducible from a single seed.
func RandomJointSample(c *kin.Chain, rng rand.Source) Solution {
	u := distuv.Uniform{Min: -math.Pi, Max: math.Pi, Src: rng}
	s := make(Solution, len(c.SolveVars)+len(c.FreeVars))
	for _, v := range c.SolveVars {
		s[v.ThetaName()] = u.Rand()
	}
	for _, v := range c.FreeVars {
		s[v.ThetaName()] = u.Rand()
	}
	return s
}

// RoundTrip runs one instance of spec §8's property: given the chain a
// tree was generated for, the generated tree itself, and one sampled
// joint configuration, it computes the pose that configuration reaches,
// asks the tree to enumerate every IK solution for that pose, and checks
// that at least one recomputed solution reproduces the original pose
// within tol (poseTolerance if tol <= 0).
func RoundTrip(c *kin.Chain, solved *tree.Chain, sample Solution, th *config.Thresholds, tol float64) (*RoundTripReport, error) {
	if tol <= 0 {
		tol = poseTolerance
	}
	pose, err := ForwardKinematics(c, sample)
	if err != nil {
		return nil, fmt.Errorf("verify: RoundTrip: sampled configuration has no forward kinematics: %w", err)
	}

	base := poseBindings(pose)
	for _, v := range c.FreeVars {
		base[v.ThetaName()] = sample[v.ThetaName()]
	}

	solutions, err := CollectSolutions(solved, base, th)
	if err != nil {
		return nil, err
	}

	report := &RoundTripReport{Sampled: sample, SourcePose: pose, Solutions: solutions, BestResidue: math.Inf(1)}
	for _, s := range solutions {
		got, err := ForwardKinematics(c, s)
		if err != nil {
			continue
		}
		residue := poseResidue(pose, got)
		if residue < report.BestResidue {
			report.BestResidue = residue
		}
		if poseEqual(pose, got, tol) {
			report.Matched = true
		}
	}
	return report, nil
}

// poseBindings builds the r00..r22/px/py/pz binding map a solution tree's
// equations were generated against (spec §6 "Symbols used in the output
// tree"), from a numeric Pose.
func poseBindings(p Pose) map[string]float64 {
	out := make(map[string]float64, 12)
	names := [3]string{"px", "py", "pz"}
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 3; cc++ {
			out[fmt.Sprintf("r%d%d", r, cc)] = p.Rot[r][cc]
		}
		out[names[r]] = p.Pos[r]
	}
	return out
}

// poseResidue is the largest single-component difference between two
// poses (rotation entries and translation entries alike), reported even
// when no candidate solution actually matched, so a failing property test
// can show how close the nearest branch came.
func poseResidue(a, b Pose) float64 {
	af, bf := flattenPose(a), flattenPose(b)
	max := 0.0
	for i := range af {
		if d := math.Abs(af[i] - bf[i]); d > max {
			max = d
		}
	}
	return max
}

// poseEqual reports whether two poses agree within tol on every
// component, using gonum/floats for the elementwise comparison rather
// than a hand-rolled loop over a flattened slice.
func poseEqual(a, b Pose, tol float64) bool {
	af, bf := flattenPose(a), flattenPose(b)
	for i := range af {
		if !floats.EqualWithinAbs(af[i], bf[i], tol) {
			return false
		}
	}
	return true
}

func flattenPose(p Pose) []float64 {
	out := make([]float64, 0, 12)
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 3; cc++ {
			out = append(out, p.Rot[r][cc])
		}
		out = append(out, p.Pos[r])
	}
	return out
}
