// SPDX-License-Identifier: MIT

package blockstructure

import "reflect"

// CompareValues exposes the recursive comparator to external tests.
func CompareValues(a, b any, d *Diagnostics) bool {
	return compare(reflect.ValueOf(a), reflect.ValueOf(b), "value", d)
}

// ParsePair exposes the persisted pair decoder to external tests.
func ParsePair(text string) (Key, bool, error) { return parsePair(text) }
