// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gfstruct/archive"
	"github.com/katalvlaran/gfstruct/matrix"
)

// PersistName is the archive type name of BlockStructure.
const PersistName = "BlockStructure"

// noneSentinel encodes a missing transformation.
const noneSentinel = "None"

// Dict field names.
const (
	fieldSumk        = "gf_struct_sumk"
	fieldSolver      = "gf_struct_solver"
	fieldSolverSumk  = "solver_to_sumk"
	fieldSumkSolver  = "sumk_to_solver"
	fieldBlockMap    = "solver_to_sumk_block"
	fieldDegShells   = "deg_shells"
	fieldTransform   = "transformation"
	fieldUniform     = "uniform"
	fieldPerBlock    = "blocks"
	fieldMatrix      = "matrix"
	fieldConjugate   = "conjugate"
	fieldRows        = "rows"
	fieldCols        = "cols"
	fieldRe          = "re"
	fieldIm          = "im"
	fieldGroupSimple = "simple"
	fieldGroupTrans  = "transform"
)

// dictFields are the top-level fields of the dict form.
var dictFields = []string{
	fieldSumk, fieldSolver, fieldSolverSumk, fieldSumkSolver,
	fieldBlockMap, fieldDegShells, fieldTransform,
}

func init() {
	archive.Register(PersistName, func(d map[string]any) (archive.Persistable, error) {
		return FromDict(d)
	})
}

var _ archive.Persistable = (*BlockStructure)(nil)

// PersistName implements archive.Persistable.
func (bs *BlockStructure) PersistName() string { return PersistName }

// ReduceToDict encodes the structure into primitive-typed values.
// Plain containers are written directly; the two index maps have their
// keys and values written as text (see textkey.go).
func (bs *BlockStructure) ReduceToDict() (map[string]any, error) {
	d := map[string]any{
		fieldSumk:       encodeSumk(bs.GfStructSumk),
		fieldSolver:     encodeSolver(bs.GfStructSolver),
		fieldBlockMap:   encodeBlockMap(bs.SolverToSumkBlock),
		fieldSolverSumk: encodeIndexMap(bs.SolverToSumk, encodeKey),
		fieldSumkSolver: encodeIndexMap(bs.SumkToSolver, encodeTarget),
		fieldDegShells:  encodeDegShells(bs.DegShells),
		fieldTransform:  encodeTransformation(bs.Transformation),
	}

	return d, nil
}

// FromDict rebuilds a structure written by ReduceToDict. It accepts both the
// in-memory dict and one read back from an archive file (where numbers may
// come back as int or float64). d is not modified.
//
// Every field written by ReduceToDict must be present; a missing one is
// ErrDecode.
func FromDict(d map[string]any) (*BlockStructure, error) {
	for _, f := range dictFields {
		if _, ok := d[f]; !ok {
			return nil, fmt.Errorf("missing field %q: %w", f, ErrDecode)
		}
	}
	bs := &BlockStructure{}
	var err error
	if bs.GfStructSumk, err = decodeSumk(d[fieldSumk]); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldSumk, err)
	}
	if bs.GfStructSolver, err = decodeSolver(d[fieldSolver]); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldSolver, err)
	}
	if bs.SolverToSumkBlock, err = decodeBlockMap(d[fieldBlockMap]); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldBlockMap, err)
	}
	if bs.SolverToSumk, err = decodeIndexMap(d[fieldSolverSumk], decodeKey); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldSolverSumk, err)
	}
	if bs.SumkToSolver, err = decodeIndexMap(d[fieldSumkSolver], decodeTarget); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldSumkSolver, err)
	}
	if bs.DegShells, err = decodeDegShells(d[fieldDegShells]); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldDegShells, err)
	}
	if bs.Transformation, err = decodeTransformation(d[fieldTransform]); err != nil {
		return nil, fmt.Errorf("%s: %w", fieldTransform, err)
	}
	n := len(bs.GfStructSolver)
	if len(bs.SolverToSumk) != n || len(bs.SumkToSolver) != n || len(bs.SolverToSumkBlock) != n {
		return nil, fmt.Errorf("solver tables disagree on shell count: %w", ErrDecode)
	}
	if len(bs.DegShells) < n {
		// older archives may omit groups of trailing shells
		for len(bs.DegShells) < n {
			bs.DegShells = append(bs.DegShells, []DegGroup{})
		}
	}

	return bs, nil
}

// ---------- encoders ----------

func encodeLabels(ls []Label) []any {
	out := make([]any, len(ls))
	for i, l := range ls {
		if n, ok := l.Int(); ok {
			out[i] = n
		} else {
			out[i] = l.name
		}
	}

	return out
}

func encodeSumk(s []SumkStruct) []any {
	out := make([]any, len(s))
	for ish, blocks := range s {
		row := make([]any, len(blocks))
		for i, b := range blocks {
			row[i] = []any{b.Name, encodeLabels(b.Indices)}
		}
		out[ish] = row
	}

	return out
}

func encodeSolver(s []GfStruct) []any {
	out := make([]any, len(s))
	for ish, g := range s {
		m := make(map[string]any, len(g))
		for name, idxs := range g {
			m[name] = encodeLabels(idxs)
		}
		out[ish] = m
	}

	return out
}

func encodeBlockMap(s []map[string]string) []any {
	out := make([]any, len(s))
	for ish, bm := range s {
		m := make(map[string]any, len(bm))
		for k, v := range bm {
			m[k] = v
		}
		out[ish] = m
	}

	return out
}

func encodeIndexMap[V any](s []map[Key]V, enc func(V) string) []any {
	out := make([]any, len(s))
	for ish, im := range s {
		m := make(map[string]any, len(im))
		for k, v := range im {
			m[encodeKey(k)] = enc(v)
		}
		out[ish] = m
	}

	return out
}

func encodeMatrix(m *matrix.Dense) any {
	if m == nil {
		return noneSentinel
	}
	buf := m.RowMajor()
	re := make([]any, len(buf))
	im := make([]any, len(buf))
	for i, v := range buf {
		re[i], im[i] = real(v), imag(v)
	}

	return map[string]any{fieldRows: m.Rows(), fieldCols: m.Cols(), fieldRe: re, fieldIm: im}
}

func encodeDegShells(ds [][]DegGroup) []any {
	out := make([]any, len(ds))
	for ish, groups := range ds {
		row := make([]any, 0, len(groups))
		for _, g := range groups {
			switch grp := g.(type) {
			case SimpleGroup:
				names := make([]any, len(grp))
				for i, n := range grp {
					names[i] = n
				}
				row = append(row, map[string]any{fieldGroupSimple: names})
			case TransformGroup:
				members := make(map[string]any, len(grp))
				for n, bt := range grp {
					members[n] = map[string]any{fieldMatrix: encodeMatrix(bt.Matrix), fieldConjugate: bt.Conjugate}
				}
				row = append(row, map[string]any{fieldGroupTrans: members})
			}
		}
		out[ish] = row
	}

	return out
}

func encodeTransformation(ts []ShellTransform) any {
	if ts == nil {
		return noneSentinel
	}
	out := make([]any, len(ts))
	for ish, t := range ts {
		switch tr := t.(type) {
		case UniformTransform:
			out[ish] = map[string]any{fieldUniform: encodeMatrix(tr.Matrix)}
		case BlockTransforms:
			blocks := make(map[string]any, len(tr))
			for n, m := range tr {
				blocks[n] = encodeMatrix(m)
			}
			out[ish] = map[string]any{fieldPerBlock: blocks}
		default:
			out[ish] = noneSentinel
		}
	}

	return out
}

// ---------- decoders ----------

func asList(v any) ([]any, error) {
	l, ok := v.([]any)
	if !ok && v != nil {
		return nil, fmt.Errorf("expected list, got %T: %w", v, ErrDecode)
	}

	return l, nil
}

func asDict(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok && v != nil {
		return nil, fmt.Errorf("expected dict, got %T: %w", v, ErrDecode)
	}

	return m, nil
}

// labelFrom accepts the integer and string forms an archive may hand back.
func labelFrom(v any) (Label, error) {
	switch x := v.(type) {
	case string:
		return NameLabel(x), nil
	case int:
		return IntLabel(x), nil
	case int64:
		return IntLabel(int(x)), nil
	case uint64:
		return IntLabel(int(x)), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return IntLabel(int(x)), nil
		}
	}

	return Label{}, fmt.Errorf("label %v (%T): %w", v, v, ErrInvalidLabel)
}

func floatFrom(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}

	return 0, fmt.Errorf("number %v (%T): %w", v, v, ErrDecode)
}

func intFrom(v any) (int, error) {
	l, err := labelFrom(v)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrDecode)
	}
	n, ok := l.Int()
	if !ok {
		return 0, fmt.Errorf("integer expected, got %q: %w", l.name, ErrDecode)
	}

	return n, nil
}

func decodeLabels(v any) ([]Label, error) {
	l, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]Label, len(l))
	for i, x := range l {
		if out[i], err = labelFrom(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func decodeSumk(v any) ([]SumkStruct, error) {
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]SumkStruct, len(shells))
	for ish, sv := range shells {
		blocks, err := asList(sv)
		if err != nil {
			return nil, err
		}
		out[ish] = make(SumkStruct, len(blocks))
		for i, bv := range blocks {
			pair, err := asList(bv)
			if err != nil {
				return nil, err
			}
			if len(pair) != 2 {
				return nil, fmt.Errorf("shell %d block %d: want [name, indices]: %w", ish, i, ErrDecode)
			}
			name, ok := pair[0].(string)
			if !ok {
				return nil, fmt.Errorf("shell %d block %d: name %v: %w", ish, i, pair[0], ErrDecode)
			}
			idxs, err := decodeLabels(pair[1])
			if err != nil {
				return nil, err
			}
			out[ish][i] = Block{Name: name, Indices: idxs}
		}
	}

	return out, nil
}

func decodeSolver(v any) ([]GfStruct, error) {
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]GfStruct, len(shells))
	for ish, sv := range shells {
		m, err := asDict(sv)
		if err != nil {
			return nil, err
		}
		g := make(GfStruct, len(m))
		for name, iv := range m {
			if g[name], err = decodeLabels(iv); err != nil {
				return nil, err
			}
		}
		out[ish] = g
	}

	return out, nil
}

func decodeBlockMap(v any) ([]map[string]string, error) {
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]string, len(shells))
	for ish, sv := range shells {
		m, err := asDict(sv)
		if err != nil {
			return nil, err
		}
		bm := make(map[string]string, len(m))
		for k, x := range m {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("shell %d block %q: %v: %w", ish, k, x, ErrDecode)
			}
			bm[k] = s
		}
		out[ish] = bm
	}

	return out, nil
}

func decodeIndexMap[V any](v any, dec func(string) (V, error)) ([]map[Key]V, error) {
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]map[Key]V, len(shells))
	for ish, sv := range shells {
		m, err := asDict(sv)
		if err != nil {
			return nil, err
		}
		im := make(map[Key]V, len(m))
		for ks, vv := range m {
			k, err := decodeKey(ks)
			if err != nil {
				return nil, err
			}
			vs, ok := vv.(string)
			if !ok {
				return nil, fmt.Errorf("shell %d key %s: value %v: %w", ish, ks, vv, ErrDecode)
			}
			if im[k], err = dec(vs); err != nil {
				return nil, err
			}
		}
		out[ish] = im
	}

	return out, nil
}

func decodeMatrix(v any) (*matrix.Dense, error) {
	if s, ok := v.(string); ok && s == noneSentinel {
		return nil, nil
	}
	m, err := asDict(v)
	if err != nil || m == nil {
		return nil, fmt.Errorf("matrix: %w", ErrDecode)
	}
	rows, err := intFrom(m[fieldRows])
	if err != nil {
		return nil, err
	}
	cols, err := intFrom(m[fieldCols])
	if err != nil {
		return nil, err
	}
	re, err := asList(m[fieldRe])
	if err != nil {
		return nil, err
	}
	im, err := asList(m[fieldIm])
	if err != nil {
		return nil, err
	}
	if len(re) != len(im) {
		return nil, fmt.Errorf("matrix: %d real, %d imaginary parts: %w", len(re), len(im), ErrDecode)
	}
	buf := make([]complex128, len(re))
	for i := range re {
		r, err := floatFrom(re[i])
		if err != nil {
			return nil, err
		}
		x, err := floatFrom(im[i])
		if err != nil {
			return nil, err
		}
		buf[i] = complex(r, x)
	}
	d, err := matrix.FromRowMajor(rows, cols, buf)
	if err != nil {
		return nil, fmt.Errorf("matrix: %v: %w", err, ErrDecode)
	}

	return d, nil
}

func decodeDegShells(v any) ([][]DegGroup, error) {
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([][]DegGroup, len(shells))
	for ish, sv := range shells {
		groups, err := asList(sv)
		if err != nil {
			return nil, err
		}
		out[ish] = make([]DegGroup, 0, len(groups))
		for gi, gv := range groups {
			g, err := decodeGroup(gv)
			if err != nil {
				return nil, fmt.Errorf("shell %d group %d: %w", ish, gi, err)
			}
			out[ish] = append(out[ish], g)
		}
	}

	return out, nil
}

func decodeGroup(v any) (DegGroup, error) {
	m, err := asDict(v)
	if err != nil {
		return nil, err
	}
	if names, ok := m[fieldGroupSimple]; ok {
		l, err := asList(names)
		if err != nil {
			return nil, err
		}
		g := make(SimpleGroup, len(l))
		for i, x := range l {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("block name %v: %w", x, ErrDecode)
			}
			g[i] = s
		}

		return g, nil
	}
	members, err := asDict(m[fieldGroupTrans])
	if err != nil || members == nil {
		return nil, fmt.Errorf("group kind: %w", ErrDecode)
	}
	g := make(TransformGroup, len(members))
	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		mv, err := asDict(members[n])
		if err != nil || mv == nil {
			return nil, fmt.Errorf("member %q: %w", n, ErrDecode)
		}
		mat, err := decodeMatrix(mv[fieldMatrix])
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", n, err)
		}
		conj, ok := mv[fieldConjugate].(bool)
		if !ok {
			return nil, fmt.Errorf("member %q: conjugate flag: %w", n, ErrDecode)
		}
		g[n] = BlockTransform{Matrix: mat, Conjugate: conj}
	}

	return g, nil
}

func decodeTransformation(v any) ([]ShellTransform, error) {
	if s, ok := v.(string); ok && s == noneSentinel {
		return nil, nil
	}
	if v == nil {
		return nil, nil
	}
	shells, err := asList(v)
	if err != nil {
		return nil, err
	}
	out := make([]ShellTransform, len(shells))
	for ish, sv := range shells {
		if s, ok := sv.(string); ok && s == noneSentinel {
			continue
		}
		m, err := asDict(sv)
		if err != nil || m == nil {
			return nil, fmt.Errorf("shell %d: %w", ish, ErrDecode)
		}
		if u, ok := m[fieldUniform]; ok {
			mat, err := decodeMatrix(u)
			if err != nil {
				return nil, fmt.Errorf("shell %d: %w", ish, err)
			}
			out[ish] = UniformTransform{Matrix: mat}
			continue
		}
		blocks, err := asDict(m[fieldPerBlock])
		if err != nil || blocks == nil {
			return nil, fmt.Errorf("shell %d: transform kind: %w", ish, ErrDecode)
		}
		bt := make(BlockTransforms, len(blocks))
		for n, mv := range blocks {
			if bt[n], err = decodeMatrix(mv); err != nil {
				return nil, fmt.Errorf("shell %d block %q: %w", ish, n, err)
			}
		}
		out[ish] = bt
	}

	return out, nil
}
