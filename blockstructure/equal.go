// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/gfstruct/matrix"
)

var denseType = reflect.TypeOf((*matrix.Dense)(nil))

// fieldNames lists the compared fields in a fixed order.
var fieldNames = []string{
	"GfStructSumk", "GfStructSolver", "SolverToSumk", "SumkToSolver",
	"SolverToSumkBlock", "DegShells", "Transformation",
}

// Equal reports deep structural equality of every field.
//
// Sequences compare positionally (nil and empty are the same), maps by key
// set then value, scalars directly, matrices elementwise. Values of different
// types are unequal, except that any two booleans compare by value. A value
// kind the comparator does not know raises UnsupportedComparison and compares
// unequal. A missing transformation only equals a missing transformation.
func (bs *BlockStructure) Equal(other *BlockStructure, opts ...Option) bool {
	if bs == nil || other == nil {
		return bs == nil && other == nil
	}
	o := gatherOptions(opts)
	if (bs.Transformation == nil) != (other.Transformation == nil) {
		return false
	}
	a, b := reflect.ValueOf(bs).Elem(), reflect.ValueOf(other).Elem()
	for _, name := range fieldNames {
		if !compare(a.FieldByName(name), b.FieldByName(name), name, o.diag) {
			return false
		}
	}

	return true
}

// compare is the recursive comparator behind Equal. It dispatches on a closed
// set of kinds: interface, pointer, matrix, sequence, mapping, record, scalar.
func compare(a, b reflect.Value, path string, diag *Diagnostics) bool {
	// interfaces: unwrap to the dynamic value, nil only equals nil
	if a.Kind() == reflect.Interface || b.Kind() == reflect.Interface {
		a, b = unwrap(a), unwrap(b)
	}
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return a.Kind() == reflect.Bool && b.Kind() == reflect.Bool && a.Bool() == b.Bool()
	}

	switch a.Kind() {
	case reflect.Ptr:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Type() == denseType {
			return a.Interface().(*matrix.Dense).Equal(b.Interface().(*matrix.Dense))
		}

		return compare(a.Elem(), b.Elem(), path, diag)

	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !compare(a.Index(i), b.Index(i), fmt.Sprintf("%s[%d]", path, i), diag) {
				return false
			}
		}

		return true

	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() {
				return false
			}
			if !compare(iter.Value(), bv, fmt.Sprintf("%s[%v]", path, iter.Key()), diag) {
				return false
			}
		}

		return true

	case reflect.Struct:
		return compareRecord(a, b, path, diag)

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return a.Equal(b)
	}

	diag.Warn(Warning{
		Kind:    UnsupportedComparison,
		Shell:   -1,
		Message: fmt.Sprintf("cannot compare %s at %s", a.Type(), path),
	})

	return false
}

// compareRecord compares structs: value types with hidden fields (Label, Key,
// Target) by ==, structs with only exported fields field by field.
func compareRecord(a, b reflect.Value, path string, diag *Diagnostics) bool {
	t := a.Type()
	exported := true
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			exported = false
			break
		}
	}
	if !exported {
		if t.Comparable() {
			return a.Equal(b)
		}
		diag.Warn(Warning{
			Kind:    UnsupportedComparison,
			Shell:   -1,
			Message: fmt.Sprintf("cannot compare %s at %s", t, path),
		})

		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if !compare(a.Field(i), b.Field(i), path+"."+t.Field(i).Name, diag) {
			return false
		}
	}

	return true
}

func unwrap(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		return v.Elem()
	}

	return v
}
