// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gfstruct/archive"
	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// richStructure has string and integer labels, both group kinds, a dropped
// orbital and all three transformation shapes.
func richStructure(t *testing.T) *bst.BlockStructure {
	t.Helper()
	bs := mustFull(t, []bst.GfStruct{
		{"up": bst.Ints(0, 1), "down": bst.Ints(0, 1)},
		{"eg": bst.Names("z2", "x2y2"), "t2g": bst.Ints(0, 1, 2)},
		{"s": bst.Ints(0)},
	}, []int{0, 1, 1, 2})
	require.NoError(t, bs.PickSolver([]bst.GfStruct{
		{"up": bst.Ints(0, 1), "down": bst.Ints(1)},
		{"eg": bst.Names("x2y2", "z2"), "t2g": bst.Ints(0, 1, 2)},
		{"s": bst.Ints(0)},
	}))
	require.NoError(t, bs.SetDegShells(0, []bst.DegGroup{bst.SimpleGroup{"up", "down"}}))
	require.NoError(t, bs.SetDegShells(1, []bst.DegGroup{
		bst.TransformGroup{
			"eg": {Matrix: mustMatrix(t, [][]complex128{{0.5, 0.5i}, {-0.5i, 0.5}}), Conjugate: true},
		},
		bst.SimpleGroup{"t2g"},
	}))
	require.NoError(t, bs.SetTransformation([]bst.ShellTransform{
		bst.UniformTransform{Matrix: mustMatrix(t, [][]complex128{{1, 0}, {0, -1}})},
		bst.BlockTransforms{"eg": mustMatrix(t, [][]complex128{{0, 1}, {1, 0}}), "t2g": mustMatrix(t, [][]complex128{{1, 0, 0}, {0, 1, 0}, {0, 0, 0.25}})},
		nil,
	}))

	return bs
}

// TestPersist_RoundTrip decodes what it encodes, with and without transformation.
func TestPersist_RoundTrip(t *testing.T) {
	bs := richStructure(t)
	d, err := bs.ReduceToDict()
	require.NoError(t, err)
	back, err := bst.FromDict(d)
	require.NoError(t, err)
	requireEqual(t, bs, back)

	eff := back.EffectiveTransformation()
	require.Len(t, eff, 3)
	m, ok := eff[1].For("t2g")
	require.True(t, ok)
	v, err := m.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, complex(0.25, 0), v)
	assert.Nil(t, eff[2])

	require.NoError(t, bs.SetTransformation(nil))
	d, err = bs.ReduceToDict()
	require.NoError(t, err)
	assert.Equal(t, "None", d["transformation"])
	back, err = bst.FromDict(d)
	require.NoError(t, err)
	assert.Nil(t, back.Transformation)
	requireEqual(t, bs, back)
}

// TestPersist_TextKeys checks the textual form of the index maps.
func TestPersist_TextKeys(t *testing.T) {
	bs := mustFull(t, updown(), nil)
	require.NoError(t, bs.PickSolver([]bst.GfStruct{{"up": bst.Ints(0, 1)}}))
	d, err := bs.ReduceToDict()
	require.NoError(t, err)

	s2s := d["sumk_to_solver"].([]any)[0].(map[string]any)
	assert.Equal(t, `["up",1]`, s2s[`["up",1]`])
	assert.Equal(t, `[null,null]`, s2s[`["down",0]`])

	key, absent, err := bst.ParsePair(`["eg","0"]`)
	require.NoError(t, err)
	assert.False(t, absent)
	assert.Equal(t, bst.K("eg", bst.NameLabel("0")), key, "quoted labels stay strings")

	_, absent, err = bst.ParsePair(` [ null , null ] `)
	require.NoError(t, err)
	assert.True(t, absent)

	for _, bad := range []string{
		`__import__('os').system('true')`,
		`["up",0] ["x",1]`,
		`["up"]`,
		`["up",1.5]`,
		`[0,0]`,
		`["up",{"a":1}]`,
	} {
		_, _, err = bst.ParsePair(bad)
		assert.Error(t, err, "%s must not decode", bad)
	}
}

// TestPersist_DecodeErrors rejects malformed dicts.
func TestPersist_DecodeErrors(t *testing.T) {
	d, err := mustFull(t, updown(), nil).ReduceToDict()
	require.NoError(t, err)

	_, err = bst.FromDict(map[string]any{})
	assert.ErrorIs(t, err, bst.ErrDecode, "an empty dict is not a structure")

	for field := range d {
		partial := map[string]any{}
		for k, v := range d {
			if k != field {
				partial[k] = v
			}
		}
		_, err = bst.FromDict(partial)
		assert.ErrorIs(t, err, bst.ErrDecode, "without %s", field)
	}

	bad := map[string]any{}
	for k, v := range d {
		bad[k] = v
	}
	bad["solver_to_sumk"] = []any{}
	_, err = bst.FromDict(bad)
	assert.ErrorIs(t, err, bst.ErrDecode)

	bad["solver_to_sumk"] = d["solver_to_sumk"]
	bad["gf_struct_solver"] = []any{map[string]any{"up": []any{true}}}
	_, err = bst.FromDict(bad)
	assert.ErrorIs(t, err, bst.ErrInvalidLabel)
}

// TestPersist_ArchiveFile goes through the registered archive type and a YAML file.
func TestPersist_ArchiveFile(t *testing.T) {
	bs := richStructure(t)
	path := filepath.Join(t.TempDir(), "dft.yaml")

	st := archive.NewStore()
	require.NoError(t, st.Put("block_structure", bs))
	require.NoError(t, st.Save(path))

	loaded, err := archive.Load(path)
	require.NoError(t, err)
	typ, ok := loaded.Type("block_structure")
	require.True(t, ok)
	assert.Equal(t, bst.PersistName, typ)

	v, err := loaded.Get("block_structure")
	require.NoError(t, err)
	back, ok := v.(*bst.BlockStructure)
	require.True(t, ok)
	requireEqual(t, bs, back)
}
