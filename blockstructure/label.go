// SPDX-License-Identifier: MIT

package blockstructure

import (
	"cmp"
	"fmt"
	"strconv"
)

// Label is an index label inside a block: either an integer or a string.
// Labels are comparable and usable as map keys; the zero Label is the integer 0.
type Label struct {
	name  string
	num   int
	named bool
}

// IntLabel returns the integer label n.
func IntLabel(n int) Label { return Label{num: n} }

// NameLabel returns the string label s.
func NameLabel(s string) Label { return Label{name: s, named: true} }

// Ints converts integers to labels.
func Ints(ns ...int) []Label {
	out := make([]Label, len(ns))
	for i, n := range ns {
		out[i] = IntLabel(n)
	}

	return out
}

// Names converts strings to labels.
func Names(ss ...string) []Label {
	out := make([]Label, len(ss))
	for i, s := range ss {
		out[i] = NameLabel(s)
	}

	return out
}

// Range returns the labels 0..n-1.
func Range(n int) []Label {
	out := make([]Label, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = IntLabel(i)
	}

	return out
}

// IsInt reports whether l is an integer label.
func (l Label) IsInt() bool { return !l.named }

// Int returns the integer value and true for integer labels.
func (l Label) Int() (int, bool) { return l.num, !l.named }

// Name returns the string value and true for string labels.
func (l Label) Name() (string, bool) { return l.name, l.named }

// String renders the label as a block function index label ("0", "a").
func (l Label) String() string {
	if l.named {
		return l.name
	}

	return strconv.Itoa(l.num)
}

// GoString quotes string labels so "0" and 0 stay distinguishable in dumps.
func (l Label) GoString() string {
	if l.named {
		return strconv.Quote(l.name)
	}

	return strconv.Itoa(l.num)
}

// compareLabels orders integer labels numerically before string labels,
// which are ordered lexicographically.
func compareLabels(a, b Label) int {
	switch {
	case !a.named && !b.named:
		return cmp.Compare(a.num, b.num)
	case a.named && b.named:
		return cmp.Compare(a.name, b.name)
	case !a.named:
		return -1
	default:
		return 1
	}
}

// Key is an immutable (block, index) pair.
type Key struct {
	Block string
	Index Label
}

// K builds a Key.
func K(block string, index Label) Key { return Key{Block: block, Index: index} }

// String renders the key as (block, index).
func (k Key) String() string { return fmt.Sprintf("(%q, %#v)", k.Block, k.Index) }

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Block, b.Block); c != 0 {
		return c
	}

	return compareLabels(a.Index, b.Index)
}

// Target is the value side of the sumk→solver mapping: either a Key or absent.
// The zero Target is absent, so "no counterpart" never collides with a real
// (block, 0) target.
type Target struct {
	key   Key
	valid bool
}

// Absent is the target meaning "no solver counterpart".
var Absent = Target{}

// To wraps a Key into a present Target.
func To(k Key) Target { return Target{key: k, valid: true} }

// Key returns the target key and true, or the zero Key and false when absent.
func (t Target) Key() (Key, bool) { return t.key, t.valid }

// IsAbsent reports whether the target has no counterpart.
func (t Target) IsAbsent() bool { return !t.valid }

// String renders the target as (block, index) or (None, None).
func (t Target) String() string {
	if !t.valid {
		return "(None, None)"
	}

	return t.key.String()
}
