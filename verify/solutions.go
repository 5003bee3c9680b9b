// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"
	"math"

	"github.com/rigidchain/ikanalytic/config"
	"github.com/rigidchain/ikanalytic/sym"
	"github.com/rigidchain/ikanalytic/tree"
)

// Solution is one fully-bound assignment of every solve and free joint
// variable to a numeric angle (or prismatic offset), keyed by
// JointVar.ThetaName (e.g. "j0"). It is the numeric analogue of what the
// external code generator would emit as one branch's worth of assignment
// statements.
type Solution map[string]float64

// interpreter walks a generated tree.Chain the way the code generator
// would, but numerically: rather than emitting source, it evaluates each
// Formula/polynomial against a running bindings map and fans out across
// every genuinely distinct branch (a Single's several Exprs are
// alternative elbow-up/elbow-down-style solutions, not a try-until-one-
// works fallback chain, so every one that survives its checks becomes
// its own Solution). Grounded on gofem's ana package pattern: compute a
// numeric model and compare it against the closed form it was derived
// from, here by replaying the tree rather than an independent formula.
type interpreter struct {
	th   *config.Thresholds
	out  []Solution
	seen int // total StoreSolution hits; CollectSolutions does not return it
}

// CollectSolutions enumerates every IK solution a generated chain
// produces for one concrete end-effector pose/free-variable binding
// (spec §8's round-trip property needs every branch, not just the
// first, since a wrong branch choice would otherwise hide behind a
// correct one). base must already carry every pose symbol (r00..r22,
// px,py,pz) the tree's equations reference, plus a value for every
// FreeParameter the caller intends to fix rather than enumerate.
func CollectSolutions(c *tree.Chain, base map[string]float64, th *config.Thresholds) ([]Solution, error) {
	if c == nil || c.Root == nil {
		return nil, fmt.Errorf("verify: CollectSolutions: empty chain")
	}
	vals := make(map[string]float64, len(base)+8)
	for k, v := range base {
		vals[k] = v
	}
	ip := &interpreter{th: th}
	if err := ip.walk(c.Root, vals); err != nil {
		return nil, err
	}
	return ip.out, nil
}

func (ip *interpreter) walk(n tree.Node, vals map[string]float64) error {
	switch t := n.(type) {
	case nil:
		return nil

	case *tree.StoreSolution:
		snapshot := make(Solution, len(vals))
		for k, v := range vals {
			snapshot[k] = v
		}
		ip.out = append(ip.out, snapshot)
		ip.seen++
		return nil

	case *tree.Break:
		return nil

	case *tree.Sequence:
		for _, step := range t.Steps {
			if err := ip.walk(step, vals); err != nil {
				return err
			}
		}
		return nil

	case *tree.Single:
		for _, expr := range t.Exprs {
			branch := cloneVals(vals)
			val, err := tree.EvalFormula(expr, tree.WithPi(branch))
			if err != nil {
				continue // this candidate branch doesn't apply under this binding
			}
			if !checksPass(t.Checks, branch, ip.th) {
				continue
			}
			bindJoint(branch, t.Var, t.Kind, val)
			if err := ip.walk(t.Next, branch); err != nil {
				return err
			}
		}
		return nil

	case *tree.PolynomialRoots:
		coeffs := make([]float64, len(t.Poly))
		for i, c := range t.Poly {
			v, err := sym.Eval(c, vals)
			if err != nil {
				return fmt.Errorf("verify: PolynomialRoots coefficient %d: %w", i, err)
			}
			coeffs[i] = v
		}
		roots, err := RealRoots(coeffs)
		if err != nil {
			return nil // a constant polynomial (or a failed eigendecomposition) just means no branch here
		}
		for _, u := range roots {
			branch := cloneVals(vals)
			branch[t.Dummy] = u
			if !checksPass(t.Checks, branch, ip.th) {
				continue
			}
			theta, err := tree.EvalFormula(t.ThetaFromDummy, tree.WithPi(branch))
			if err != nil {
				continue
			}
			bindJoint(branch, t.Var, tree.SingleTheta, theta)
			if err := ip.walk(t.Next, branch); err != nil {
				return err
			}
		}
		return nil

	case *tree.ConicRoots:
		cosName, sinName, _ := companionNames(t.Var)
		roots, err := ConicAngles(t.Poly, cosName, sinName, vals)
		if err != nil {
			return err
		}
		for _, theta := range roots {
			branch := cloneVals(vals)
			if !checksPass(t.Checks, branch, ip.th) {
				continue
			}
			bindJoint(branch, t.Var, tree.SingleTheta, theta)
			if err := ip.walk(t.Next, branch); err != nil {
				return err
			}
		}
		return nil

	case *tree.Conditioned:
		for _, b := range t.Branches {
			if !nearZero(b.Condition, vals, ip.th) {
				continue
			}
			branch := cloneVals(vals)
			if err := ip.walk(b.Solution, branch); err != nil {
				return err
			}
		}
		return nil

	case *tree.Branch:
		v, err := sym.Eval(t.On, vals)
		if err != nil {
			return fmt.Errorf("verify: Branch.On: %w", err)
		}
		key := "nonzero"
		if math.Abs(v) < ip.th.ChopAccuracy {
			key = "zero"
		}
		return ip.walk(t.Cases[key], vals)

	case *tree.BranchConds:
		for _, cb := range t.Conds {
			if allNearZero(cb.Conditions, vals, ip.th) {
				return ip.walk(cb.Subtree, vals)
			}
		}
		return nil

	case *tree.CheckZeros:
		if allNearZero(t.Guard, vals, ip.th) {
			return ip.walk(t.ZeroBranch, vals)
		}
		return ip.walk(t.NonzeroBranch, vals)

	case *tree.FreeParameter:
		if _, ok := vals[t.Var]; !ok {
			return fmt.Errorf("verify: FreeParameter %s has no caller-supplied value", t.Var)
		}
		branch := cloneVals(vals)
		bindJoint(branch, t.Var, tree.SingleTheta, vals[t.Var])
		return ip.walk(t.Next, branch)

	case *tree.SetJoint:
		branch := cloneVals(vals)
		bindJoint(branch, t.Var, tree.SingleTheta, t.Value)
		return ip.walk(t.Next, branch)

	case *tree.Rotation:
		return ip.walk(t.Inner, vals)

	case *tree.Direction:
		return ip.walk(t.Inner, vals)

	case *tree.Chain:
		return ip.walk(t.Root, vals)
	}
	return fmt.Errorf("verify: walk: unhandled node type %T", n)
}

func cloneVals(vals map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(vals)+4)
	for k, v := range vals {
		out[k] = v
	}
	return out
}

// nearZero and allNearZero implement the "anycondition"/guard semantics
// spec §3 describes for BranchConds/CheckZeros/Conditioned: an expression
// counts as satisfied when it evaluates within the configured chop
// accuracy of zero.
func nearZero(e sym.Expr, vals map[string]float64, th *config.Thresholds) bool {
	v, err := sym.Eval(e, vals)
	if err != nil {
		return false
	}
	return math.Abs(v) < th.ChopAccuracy
}

func allNearZero(es []sym.Expr, vals map[string]float64, th *config.Thresholds) bool {
	for _, e := range es {
		if !nearZero(e, vals, th) {
			return false
		}
	}
	return true
}

// checksPass evaluates a leaf's CheckList against the branch's bindings:
// every PostcheckForZeros/PostcheckForNonzeros entry must stay nonzero
// (spec §4.4's divide-by-zero guard), and every PostcheckForRange entry
// must land in [-1,1] (an asin/acos argument domain check).
func checksPass(cl tree.CheckList, vals map[string]float64, th *config.Thresholds) bool {
	for _, g := range cl.PostcheckForZeros {
		v, err := sym.Eval(g, vals)
		if err != nil || math.Abs(v) < th.ChopAccuracy {
			return false
		}
	}
	for _, g := range cl.PostcheckForNonzeros {
		v, err := sym.Eval(g, vals)
		if err != nil || math.Abs(v) < th.ChopAccuracy {
			return false
		}
	}
	for _, r := range cl.PostcheckForRange {
		v, err := sym.Eval(r, vals)
		if err != nil || v < -1-th.ChopAccuracy || v > 1+th.ChopAccuracy {
			return false
		}
	}
	return true
}

// companionNames derives a joint variable's cos/sin/tan symbol names from
// its theta name (sym.NewJointVar's "jN" -> "cN"/"sN"/"tN" convention,
// spec §6 "Symbols used in the output tree").
func companionNames(theta string) (cos, sin, tan string) {
	suffix := theta[1:]
	return "c" + suffix, "s" + suffix, "t" + suffix
}

// bindJoint records a newly-solved joint's value under every name later
// tree nodes might reference it by: the raw theta, and whichever of
// cos/sin/tan follow algebraically from the kind of leaf that produced
// it. Single.Kind == SingleCos/SingleSin only pins down one of cos/sin
// directly; the complementary one is recovered via the Pythagorean
// identity with its principal (non-negative) branch, since the tree
// itself carries no extra sign information at that leaf.
func bindJoint(vals map[string]float64, theta string, kind tree.SingleKind, val float64) {
	cos, sin, tan := companionNames(theta)
	switch kind {
	case tree.SingleTheta:
		vals[theta] = val
		c, s := math.Cos(val), math.Sin(val)
		vals[cos], vals[sin] = c, s
		if c != 0 {
			vals[tan] = s / c
		}
	case tree.SingleCos:
		c := clamp11(val)
		s := math.Sqrt(math.Max(0, 1-c*c))
		vals[cos], vals[sin] = c, s
		vals[theta] = math.Acos(c)
		if c != 0 {
			vals[tan] = s / c
		}
	case tree.SingleSin:
		s := clamp11(val)
		c := math.Sqrt(math.Max(0, 1-s*s))
		vals[cos], vals[sin] = c, s
		vals[theta] = math.Asin(s)
		if c != 0 {
			vals[tan] = s / c
		}
	}
}

func clamp11(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
