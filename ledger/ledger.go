// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ledger implements the degenerate-case ledger (spec.md §3, §9):
// a set of sets of conditions, persistent with structural sharing so a
// speculative branch can Fork it in O(1) and have its own mutations
// invisible to siblings and to the parent if the branch fails.
package ledger

import (
	"sort"
	"strings"
)

// Case is one degenerate-case condition set, stored as its sorted,
// joined string form so membership testing is a plain map lookup.
type Case []string

func (c Case) key() string {
	s := append([]string(nil), c...)
	sort.Strings(s)
	return strings.Join(s, "\x00")
}

// Ledger is a set of Cases. Fork returns a new Ledger sharing the old
// one's backing map; Add mutates its receiver in place, copying a shared
// map first (copy-on-write happens at Add time, never at Fork time).
type Ledger struct {
	seen   map[string]bool
	shared bool
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{seen: make(map[string]bool)}
}

// Fork returns a ledger that starts out identical to l but whose
// mutations never affect l (spec §5 "cloned on entry to each speculative
// branch and restored on exit", §9 "persistent set with structural
// sharing"). The underlying map is shared until the first Add, at which
// point it is copied — real structural sharing rather than an eager deep
// copy on every Fork.
func (l *Ledger) Fork() *Ledger {
	return &Ledger{seen: l.seen, shared: true}
}

// Has reports whether case c (or an equal-as-a-set case) is already
// recorded (spec §3 "every case added is not already present").
func (l *Ledger) Has(c Case) bool {
	return l.seen[c.key()]
}

// Add records c, returning false if it was already present (duplicate —
// the caller must not recurse into it again) and true if this is a new
// case.
func (l *Ledger) Add(c Case) bool {
	key := c.key()
	if l.seen[key] {
		return false
	}
	if l.shared {
		cp := make(map[string]bool, len(l.seen)+1)
		for k, v := range l.seen {
			cp[k] = v
		}
		l.seen = cp
		l.shared = false
	}
	l.seen[key] = true
	return true
}

// Size reports how many distinct cases are recorded, used by tests
// checking "the ledger never contains duplicate sets" (spec §8) by
// comparing Size before/after a repeated Add.
func (l *Ledger) Size() int { return len(l.seen) }
