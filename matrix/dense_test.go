// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gfstruct/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes covers zero, positive and negative shapes.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSet verifies bounds checks and the NaN/Inf policy.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 3+4i))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3+4i, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, complex(0, math.Inf(1))), matrix.ErrNaNInf)
}

// TestNewDenseFrom_Ragged ensures row lengths are enforced.
func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)

	m, err := matrix.NewDenseFrom([][]complex128{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, _ := m.At(1, 1)
	assert.Equal(t, complex128(4), v)
}

// TestDense_CloneEqual checks that Clone is independent and Equal is exact.
func TestDense_CloneEqual(t *testing.T) {
	a, err := matrix.Identity(3)
	require.NoError(t, err)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1, 1e-15))
	assert.False(t, a.Equal(b), "a single tiny element must break equality")
	v, _ := a.At(0, 1)
	assert.Equal(t, complex128(0), v, "clone must not share storage")

	var nilA, nilB *matrix.Dense
	assert.True(t, nilA.Equal(nilB))
	assert.False(t, a.Equal(nilB))
}

// TestDense_MaxAbsConj checks modulus and conjugation helpers.
func TestDense_MaxAbsConj(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]complex128{{1i, -2}, {3 + 4i, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m.MaxAbs(), 1e-12)

	c := m.Conj()
	v, _ := c.At(0, 0)
	assert.Equal(t, -1i, v)
}

// TestFromRowMajor round-trips the flat buffer.
func TestFromRowMajor(t *testing.T) {
	src, err := matrix.NewDenseFrom([][]complex128{{1, 2, 3}, {4, 5, 6i}})
	require.NoError(t, err)

	back, err := matrix.FromRowMajor(2, 3, src.RowMajor())
	require.NoError(t, err)
	assert.True(t, src.Equal(back))

	_, err = matrix.FromRowMajor(2, 2, []complex128{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
