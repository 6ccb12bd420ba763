// SPDX-License-Identifier: MIT

package gf_test

import (
	"testing"

	"github.com/katalvlaran/gfstruct/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OrderAndIndices(t *testing.T) {
	b, err := gf.New([]string{"up", "down"}, [][]string{{"0", "1"}, {"0"}}, gf.WithMesh(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"up", "down"}, b.BlockNames())
	assert.Equal(t, 3, b.MeshSize())

	left, right, err := b.BlockIndices("up")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, left)
	assert.Equal(t, left, right)

	_, _, err = b.BlockIndices("left")
	assert.ErrorIs(t, err, gf.ErrUnknownBlock)
}

func TestNew_Errors(t *testing.T) {
	_, err := gf.New([]string{"a", "a"}, [][]string{{"0"}, {"0"}})
	assert.ErrorIs(t, err, gf.ErrDuplicate)

	_, err = gf.New([]string{"a"}, [][]string{{"0", "0"}})
	assert.ErrorIs(t, err, gf.ErrDuplicate)

	_, err = gf.New([]string{"a"}, nil)
	assert.ErrorIs(t, err, gf.ErrBadInput)

	assert.Panics(t, func() { gf.WithMesh(0) })
}

func TestBlockGf_ElementRoundTrip(t *testing.T) {
	b, err := gf.New([]string{"up"}, [][]string{{"a", "b"}}, gf.WithMesh(2))
	require.NoError(t, err)

	require.NoError(t, b.SetElement("up", "a", "b", []complex128{1, 2i}))
	v, err := b.Element("up", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2i}, v)

	zero, err := b.Element("up", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0}, zero)

	assert.ErrorIs(t, b.SetElement("up", "a", "c", []complex128{1, 1}), gf.ErrUnknownIndex)
	assert.ErrorIs(t, b.SetElement("up", "a", "a", []complex128{1}), gf.ErrMeshMismatch)
	assert.ErrorIs(t, b.SetElement("dn", "a", "a", []complex128{1, 1}), gf.ErrUnknownBlock)
}

func TestBlockGf_Clone(t *testing.T) {
	b, err := gf.New([]string{"up"}, [][]string{{"0"}})
	require.NoError(t, err)
	c := b.Clone()
	require.NoError(t, c.SetElement("up", "0", "0", []complex128{7}))

	v, err := b.Element("up", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, []complex128{0}, v)
}
