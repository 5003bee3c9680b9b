// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import "zappem.net/math/algex/factor"

// Identity is a (pattern, substitution) rewrite rule, spec §9's
// "Pattern matching with wildcards": the standalone-scan and
// trig-simplifier rewrite rules are pairs like this, applied in order.
type Identity struct {
	Pattern factor.Value
	Repl    Expr
}

// NewIdentity parses a "pattern => replacement" pair, e.g.
// NewIdentity("c0*c1", "c01+s0*s1") rewrites c0*c1 wherever it appears.
// This mirrors applyIdentities in the algex IK walkthrough
// (other_examples/..._tinkerator-algex__examples-ik.go.go), generalised
// to an arbitrary rule list instead of two hard-coded substitutions.
func NewIdentity(pattern, repl string) (Identity, error) {
	p, err := ParseFactor(pattern)
	if err != nil {
		return Identity{}, err
	}
	r, err := Parse(repl)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Pattern: p, Repl: r}, nil
}

// TrigSimplify applies every identity in order, each against the result
// of the previous one, exactly as algex's applyIdentities chains two
// .Substitute calls.
func TrigSimplify(e Expr, identities []Identity) Expr {
	for _, id := range identities {
		e = e.Substitute(id.Pattern, id.Repl)
	}
	return e
}

