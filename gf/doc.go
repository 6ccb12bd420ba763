// Package gf is a small block-structured matrix-valued function.
//
// A Gf is one square block: an ordered list of string index labels and a
// fixed number of mesh points, each point holding an n×n matrix.Dense.
// A BlockGf is an ordered collection of named Gf blocks. BlockGf satisfies
// the function contract consumed by package blockstructure, so it can be
// created, validated and converted between block structures there.
//
// The mesh is opaque here (Matsubara frequency, imaginary time, ...): only
// its size matters for storage and element transfer.
package gf
