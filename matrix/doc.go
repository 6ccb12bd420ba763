// Package matrix provides the dense complex matrix used for change-of-basis
// transforms and for the per-point data of block-structured functions.
//
// The package provides:
//
//   - Dense, a row-major complex128 matrix with error-returning At/Set.
//   - Constructors NewDense, NewDenseFrom, Identity and FromRowMajor.
//   - Exact Equal, MaxAbs and Conj helpers.
//
// Matrices never panic on user-triggered conditions; see errors.go for the
// sentinel set.
package matrix
