// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

// InvertChain reinterprets base and end-effector and inverts every link
// matrix (GLOSSARY "Chain inversion"): a final rescue attempt built when
// the forward chain cannot be solved (spec §4.6 "Failure semantics").
// Since the chain's product is L0·J0·R0·L1·J1·R1·...·Ln-1·Jn-1·Rn-1, its
// inverse reverses the link order and swaps each entry's own Left/Right
// (each individually inverted): the old Right becomes the new Left, the
// old Left becomes the new Right. Joint variables are kept as-is; the
// (external) code generator is responsible for the sign convention a
// specific target language expects for an inverted joint motion.
func InvertChain(c *Chain) (*Chain, error) {
	n := len(c.Links)
	inv := &Chain{
		Base:        c.EndEffector,
		EndEffector: c.Base,
		SolveVars:   c.SolveVars,
		FreeVars:    c.FreeVars,
		Links:       make([]*LinkEntry, n),
	}
	for i := 0; i < n; i++ {
		src := c.Links[n-1-i]
		left, err := src.Right.Inverse()
		if err != nil {
			return nil, err
		}
		right, err := src.Left.Inverse()
		if err != nil {
			return nil, err
		}
		inv.Links[i] = &LinkEntry{Joint: src.Joint, Left: left, Right: right, Var: src.Var}
	}
	return inv, nil
}
