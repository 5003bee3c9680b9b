// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledger

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ledger01(tst *testing.T) {

	chk.PrintTitle("ledger01. add, duplicate rejected, fork isolation")

	l := New()
	if !l.Add(Case{"j0=0", "j1=pi"}) {
		tst.Errorf("first add should succeed\n")
	}
	if l.Add(Case{"j1=pi", "j0=0"}) {
		tst.Errorf("reordered duplicate should be rejected\n")
	}
	chk.IntAssert(l.Size(), 1)

	f := l.Fork()
	if !f.Add(Case{"j2=0"}) {
		tst.Errorf("fork add should succeed\n")
	}
	chk.IntAssert(f.Size(), 2)
	chk.IntAssert(l.Size(), 1)
}
