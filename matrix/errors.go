// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped
// with call-site context via %w); tests check them with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped across logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or that a public constructor received a zero dimension where one is not allowed.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf component in a value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged indicates that row slices passed to NewDenseFrom differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrDimensionMismatch indicates two operands of incompatible shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
