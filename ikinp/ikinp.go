// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ikinp reads the joint-description stream spec.md §6 documents
// as the core's one external input contract: a header count followed by
// per-joint records (type tag, child/parent/joint ids, axis, linear
// coefficients, role flag, left and right 3x4 matrices). Grounded on
// gofem's inp/mat.go "decode then validate" shape, adapted from a JSON
// document to a flat token stream because that is the wire format
// spec.md §6 actually specifies; the toolkit-backed body loader the
// Non-goals exclude remains an external collaborator (BodySource).
package ikinp

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rigidchain/ikanalytic/ikerrors"
	"github.com/rigidchain/ikanalytic/kin"
	"github.com/rigidchain/ikanalytic/sym"
)

// BodySource is the undefined external interface spec.md §6 leaves to
// the kinematic-body loader (a robotics-toolkit integration, out of
// scope here): anything that can hand back a raw joint stream.
type BodySource interface {
	OpenJointStream() (io.Reader, error)
}

// ReadJointStream decodes exactly the record layout spec.md §6
// describes and §4.1 consumes, rounding every float to five decimals
// and promoting it to sym's extended precision via sym.FromFloat as it
// is read (spec §6 "the reader rounds to five decimals and promotes to
// extended precision internally").
func ReadJointStream(r io.Reader) ([]*kin.Joint, error) {
	sc := newTokenScanner(r)

	n, err := sc.Int()
	if err != nil {
		return nil, ikerrors.NewInputError("joint stream header: %v", err)
	}
	if n < 0 {
		return nil, ikerrors.NewInputError("joint stream header: negative count %d", n)
	}

	joints := make([]*kin.Joint, 0, n)
	for i := 0; i < n; i++ {
		j, err := readJoint(sc)
		if err != nil {
			return nil, ikerrors.NewInputError("joint record %d: %v", i, err)
		}
		joints = append(joints, j)
	}
	if extra := sc.Remaining(); extra {
		return nil, ikerrors.NewInputError("joint stream: trailing data after %d records", n)
	}
	return joints, nil
}

func readJoint(sc *tokenScanner) (*kin.Joint, error) {
	tag, err := sc.Token()
	if err != nil {
		return nil, err
	}
	typ, err := kin.ParseType(tag)
	if err != nil {
		return nil, err
	}

	child, err := sc.Int()
	if err != nil {
		return nil, err
	}
	parent, err := sc.Int()
	if err != nil {
		return nil, err
	}
	id, err := sc.Int()
	if err != nil {
		return nil, err
	}

	var axis [3]float64
	for k := range axis {
		axis[k], err = sc.Float()
		if err != nil {
			return nil, err
		}
	}

	a, err := sc.Float()
	if err != nil {
		return nil, err
	}
	b, err := sc.Float()
	if err != nil {
		return nil, err
	}

	roleTag, err := sc.Token()
	if err != nil {
		return nil, err
	}
	role, err := parseRole(roleTag)
	if err != nil {
		return nil, err
	}

	left, err := readMatrix34(sc)
	if err != nil {
		return nil, err
	}
	right, err := readMatrix34(sc)
	if err != nil {
		return nil, err
	}

	return &kin.Joint{
		ID:         id,
		Type:       typ,
		ChildLink:  child,
		ParentLink: parent,
		Axis:       axis,
		A:          round5(a),
		B:          round5(b),
		Left:       sym.FromMatrix34(left),
		Right:      sym.FromMatrix34(right),
		Role:       role,
	}, nil
}

func readMatrix34(sc *tokenScanner) ([3][4]float64, error) {
	var m [3][4]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := sc.Float()
			if err != nil {
				return m, err
			}
			m[i][j] = round5(v)
		}
	}
	return m, nil
}

func parseRole(tag string) (kin.Role, error) {
	switch tag {
	case "solve":
		return kin.RoleSolve, nil
	case "free":
		return kin.RoleFree, nil
	case "dummy":
		return kin.RoleDummy, nil
	}
	return 0, ikerrors.NewInputError("unsupported role flag %q", tag)
}

func round5(x float64) float64 {
	const scale = 1e5
	return float64(int64(x*scale+signOf(x)*0.5)) / scale
}

func signOf(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// tokenScanner splits a stream into whitespace-delimited tokens, the
// same flat-field shape gofem's own .msh/.mat readers assume before
// JSON took over; no example repo in the retrieved set exposes a
// heterogeneous (mixed string/int/float) token reader, so this loop is
// hand-rolled over bufio.Scanner rather than grounded on a specific
// pack file.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) Token() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.sc.Text(), nil
}

func (t *tokenScanner) Int() (int, error) {
	tok, err := t.Token()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenScanner) Float() (float64, error) {
	tok, err := t.Token()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// Remaining reports whether another token follows (used to detect
// trailing garbage after the declared record count).
func (t *tokenScanner) Remaining() bool {
	return t.sc.Scan()
}
