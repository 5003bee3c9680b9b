// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import "github.com/rigidchain/ikanalytic/ikerrors"

// NormalizeCoeffs validates each joint's linear coefficients (spec §3
// "Joint... linear coefficients (a,b) such that effective parameter =
// a·θ + b") before any transform or equation is built. It does not
// rewrite the joints; the supported coefficients are folded in later by
// jointTransform, so no solver layer threads a,b itself.
//
// Prismatic joints: any (a,b) is supported; jointTransform folds the
// scale and offset directly into the translation amplitude.
// Hinge joints: only the identity coefficients (a==1,b==0) are folded
// here. A non-trivial affine remap of a hinge's angle would require
// re-deriving cos/sin of a sum angle inside the CAS facade, which the
// retrieved algex binding has no entry point for (sym.HingeRotation's
// underlying rotation.RZ takes a bare joint-name symbol, not an
// expression). Declared but unsupported combinations are reported as an
// input error rather than silently solving the wrong geometry.
func NormalizeCoeffs(joints []*Joint) error {
	for _, j := range joints {
		if j.EffectiveIsIdentity() {
			continue
		}
		if j.A == 0 {
			return ikerrors.NewInputError("joint %d: zero scale coefficient degenerates the joint", j.ID)
		}
		if j.Type == Hinge && (j.A != 1 || j.B != 0) {
			return ikerrors.NewInputError(
				"joint %d: non-identity coefficients on a hinge joint are not supported", j.ID)
		}
	}
	return nil
}
