// SPDX-License-Identifier: MIT

package gf

import "errors"

// Sentinel errors for block function construction and element access.
var (
	// ErrUnknownBlock indicates a lookup of a block name that is not present.
	ErrUnknownBlock = errors.New("gf: unknown block")

	// ErrUnknownIndex indicates an index label that is not part of the block.
	ErrUnknownIndex = errors.New("gf: unknown index label")

	// ErrDuplicate indicates a repeated block name or index label at construction.
	ErrDuplicate = errors.New("gf: duplicate name")

	// ErrMeshMismatch indicates element data whose length differs from the mesh size.
	ErrMeshMismatch = errors.New("gf: value length does not match mesh")

	// ErrBadInput indicates inconsistent constructor arguments.
	ErrBadInput = errors.New("gf: bad input")
)
