// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"github.com/rigidchain/ikanalytic/sym"
)

// Vec3 is a symbolic 3-vector; axis lines and frame positions are each
// one of these.
type Vec3 [3]sym.Expr

// cross3 is the symbolic twin of gofem's utl.Cross3d (used there for
// beam local-frame vectors, ele/solid/beam.go): same three
// cross-product component formulas, operating on sym.Expr instead of
// float64 since the frame vectors here are not yet numeric.
func cross3(a, b Vec3) Vec3 {
	return Vec3{
		sym.Mul(a[1], b[2]).Sub(sym.Mul(a[2], b[1])),
		sym.Mul(a[2], b[0]).Sub(sym.Mul(a[0], b[2])),
		sym.Mul(a[0], b[1]).Sub(sym.Mul(a[1], b[0])),
	}
}

// dot3 is the symbolic twin of gofem's utl.Dot3d.
func dot3(a, b Vec3) sym.Expr {
	return sym.Mul(a[0], b[0]).Add(sym.Mul(a[1], b[1])).Add(sym.Mul(a[2], b[2]))
}

func scale3(v Vec3, s sym.Expr) Vec3 {
	return Vec3{sym.Mul(v[0], s), sym.Mul(v[1], s), sym.Mul(v[2], s)}
}

func sub3(a, b Vec3) Vec3 {
	return Vec3{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

func add3(a, b Vec3) Vec3 {
	return Vec3{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

func normSq3(v Vec3) sym.Expr { return dot3(v, v) }

// Frame is one of the two frames (identity/base, end-effector) the
// Raghavan-Roth construction compares: an axis line direction L and a
// point position P on that line.
type Frame struct {
	L, P Vec3
}

// RaghavanRoth builds the fourteen polynomial equalities spec §4.2 and
// the GLOSSARY describe: "derived from axis-line positions, their cross
// and dot products" between frame a and frame b. Axis lines L are
// assumed already unit (the kinematic-body loader normalises joint
// axes before a Frame is built). Each of the seven structural relations
// below is instantiated twice — once directly, once with a/b swapped —
// giving fourteen equations total.
func RaghavanRoth(a, b Frame) []sym.Eq {
	var eqs []sym.Eq
	for _, pair := range [][2]Frame{{a, b}, {b, a}} {
		f, g := pair[0], pair[1]

		// L_f x L_g - (P_f - P_g) x L_g  == 0 style cross-product
		// relation linking the two axis lines through their offset.
		crossLL := cross3(f.L, g.L)
		diffP := sub3(f.P, g.P)
		crossDiffLg := cross3(diffP, g.L)
		for i := 0; i < 3; i++ {
			eqs = append(eqs, crossLL[i].Sub(crossDiffLg[i]))
		}

		// L_f . (P_f - P_g) == L_f . P_f - L_f . P_g, the dot-product
		// relation between an axis line and the two frame positions.
		eqs = append(eqs, dot3(f.L, diffP).Sub(dot3(f.L, f.P).Sub(dot3(f.L, g.P))))

		// |P_f - P_g|^2 . L_f - 2 (L_f . (P_f-P_g)) (P_f-P_g), the
		// "|P|^2*L - 2(L.P)P" combination the GLOSSARY names explicitly.
		lenTerm := scale3(f.L, normSq3(diffP))
		dotTerm := scale3(diffP, sym.Mul(sym.Rational(2, 1), dot3(f.L, diffP)))
		combo := sub3(lenTerm, dotTerm)
		for i := 0; i < 3; i++ {
			eqs = append(eqs, combo[i])
		}
	}
	return eqs
}
