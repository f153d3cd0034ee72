// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intern turns client-supplied opaque strings (question ids,
// source ids) into small stable integer handles, the way the graph
// store's node tables are keyed per the design notes: "String ids
// everywhere... Intern ids on first sight; all internal references are
// small integers."
//
// The teacher's consensus engine gets this for free from github.com/
// luxfi/ids, whose ID type is a fixed-size cryptographic hash — wrong
// shape for arbitrary client tokens like "q1" or "FROM s1" that never
// get hashed. No library in the example corpus interns plain strings
// into dense handles, so this is a small standard-library table instead.
package intern

// Handle is a dense, stable reference to an interned string. The zero
// Handle is never issued by a Table; callers may use it as a "no value"
// sentinel.
type Handle int32

// Table interns strings into Handles. A Table is not safe for
// concurrent use, matching the single-threaded engine it backs.
type Table struct {
	byString map[string]Handle
	strings  []string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{byString: make(map[string]Handle)}
}

// Intern returns the stable handle for s, creating one if s has not been
// seen before.
func (t *Table) Intern(s string) Handle {
	if h, ok := t.byString[s]; ok {
		return h
	}
	t.strings = append(t.strings, s)
	h := Handle(len(t.strings))
	t.byString[s] = h
	return h
}

// Lookup returns the handle for s without creating one.
func (t *Table) Lookup(s string) (Handle, bool) {
	h, ok := t.byString[s]
	return h, ok
}

// String returns the original string for h. It panics if h was never
// issued by this Table, since that indicates a handle from a different
// table or store corruption.
func (t *Table) String(h Handle) string {
	return t.strings[h-1]
}

// Len returns the number of distinct strings interned.
func (t *Table) Len() int {
	return len(t.strings)
}
