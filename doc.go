// Package gfstruct manages the block structure of matrix-valued functions
// attached to correlated shells, and the mapping between the solver basis
// and the full (sumk) basis.
//
// Subpackages:
//
//	blockstructure/  index mapping, restriction, relabeling, conversion, persistence
//	gf/              block-structured matrix-valued function sampled on a mesh
//	matrix/          dense complex matrices for transforms and function data
//	archive/         type registry and YAML store for primitive dict forms
//	cmd/blockstruct  command line access to archived structures
//
//	go get github.com/katalvlaran/gfstruct
package gfstruct
