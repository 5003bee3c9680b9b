// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import "fmt"

// JointVar bundles the four symbols spec §3 says are treated as
// algebraically independent in polynomial contexts: θ, c=cosθ, s=sinθ,
// t=tanθ. Index is the solve-order index used for the j0,j1,... output
// symbols (spec §6 "Symbols used in the output tree").
type JointVar struct {
	Index      int
	Theta      Expr
	Cos        Expr
	Sin        Expr
	Tan        Expr
	thetaName  string
	cosName    string
	sinName    string
	tanName    string
}

// NewJointVar builds the symbol family for solve-order index i.
func NewJointVar(i int) *JointVar {
	tn, cn, sn, un := fmt.Sprintf("j%d", i), fmt.Sprintf("c%d", i), fmt.Sprintf("s%d", i), fmt.Sprintf("t%d", i)
	return &JointVar{
		Index:     i,
		Theta:     Symbol(tn),
		Cos:       Symbol(cn),
		Sin:       Symbol(sn),
		Tan:       Symbol(un),
		thetaName: tn,
		cosName:   cn,
		sinName:   sn,
		tanName:   un,
	}
}

// ThetaName, CosName, SinName, TanName expose the raw symbol names,
// needed wherever a string pattern (not an Expr) is required, e.g.
// sym.ParseFactor or rotation.RX's joint-name argument.
func (v *JointVar) ThetaName() string { return v.thetaName }
func (v *JointVar) CosName() string   { return v.cosName }
func (v *JointVar) SinName() string   { return v.sinName }
func (v *JointVar) TanName() string   { return v.tanName }

// InjectPythagorean rewrites every occurrence of s_i^2 in e with
// 1-c_i^2, the one identity spec §3 says is "injected explicitly when
// needed" rather than assumed automatically.
func (v *JointVar) InjectPythagorean(e Expr) Expr {
	pattern, err := ParseFactor(fmt.Sprintf("%s*%s", v.sinName, v.sinName))
	if err != nil {
		return e
	}
	repl, err := Parse(fmt.Sprintf("1-%s*%s", v.cosName, v.cosName))
	if err != nil {
		return e
	}
	return e.Substitute(pattern, repl)
}

// WeierstrassCosSin returns the half-angle substitution c=(1-u^2)/(1+u^2)
// and s=2u/(1+u^2) for the dummy u=tan(θ/2), each as a (numerator,
// denominator) pair since algex expressions built from sym.Symbol do not
// carry division directly (spec §4.3 strategy 5, §4.4 step 5).
func WeierstrassCosSin(u Expr) (cosNum, cosDen, sinNum, sinDen Expr) {
	one := One()
	uu := Mul(u, u)
	cosNum = one.Sub(uu)
	cosDen = one.Add(uu)
	sinNum = Mul(Rational(2, 1), u)
	sinDen = cosDen
	return
}
