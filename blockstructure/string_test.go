// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"testing"

	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Dump(t *testing.T) {
	bs := mustFull(t, updown(), nil)
	require.NoError(t, bs.PickSolver([]bst.GfStruct{{"up": bst.Ints(1), "down": bst.Ints(0, 1)}}))
	require.NoError(t, bs.SetDegShells(0, []bst.DegGroup{bst.TransformGroup{
		"down": {Matrix: mustMatrix(t, [][]complex128{{1, 0}, {0, 1}}), Conjugate: true},
	}}))

	s := bs.String()
	assert.Contains(t, s, `("up", 0) -> ("up", 1)`)
	assert.Contains(t, s, `("up", 0) -> (None, None)`)
	assert.Contains(t, s, "equivalent group 0")
	assert.Contains(t, s, "down*:")
	assert.Contains(t, s, "transformation\nNone")

	require.NoError(t, bs.SetTransformation([]bst.ShellTransform{bst.BlockTransforms{"up": nil}}))
	assert.Contains(t, bs.String(), " shell 0\n  up:")
}
