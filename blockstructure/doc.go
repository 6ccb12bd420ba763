// Package blockstructure maps block-structured matrix-valued functions
// between a solver basis and a sumk basis.
//
// A BlockStructure holds, for every shell:
//
//	GfStructSolver[ish]     block -> solver index labels (inequivalent shell)
//	GfStructSumk[csh]       ordered (block, labels) list (correlated shell)
//	SolverToSumk[ish]       (solver block, index) -> (sumk block, index)
//	SumkToSolver[ish]       (sumk block, index)   -> (solver block, index) or Absent
//	SolverToSumkBlock[ish]  solver block -> sumk block
//	DegShells[ish]          groups of symmetry-equivalent blocks
//	Transformation[ish]     optional change of basis applied in sumk space
//
// Structures start as FullStructure (identity mapping) or are decoded with
// FromDict, and are then narrowed (PickSolver, PickSumk), relabeled
// (MapSolver) or collapsed (ApproximateAsDiagonal). Convert moves data
// from one structure into another, dropping what has no counterpart.
//
// Errors:
//
//	ErrStructureMismatch - block function does not fit the structure (fatal).
//	ErrInvalidSpace      - space is neither Solver nor Sumk (fatal).
//	ErrShellOutOfRange, ErrShellCount, ErrUnknownIndex, ErrUnknownBlock,
//	ErrDuplicateLabel, ErrInvalidLabel, ErrDecode.
//
// Recoverable conditions (AmbiguousMapping, LossyConversion,
// UnsupportedComparison) are Warning values delivered to the Diagnostics
// passed with WithDiagnostics; only a Diagnostics marked Coordinator logs
// them.
//
// The package does no locking; callers must not mutate one structure from
// several goroutines.
package blockstructure
