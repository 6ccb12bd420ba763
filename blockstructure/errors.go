// SPDX-License-Identifier: MIT
// Package blockstructure: sentinel error set.
// Fatal conditions are returned as these sentinels (wrapped with shell and
// block context via %w) and matched with errors.Is. Recoverable conditions
// never become errors: they are reported as Warning values (diagnostics.go).

package blockstructure

import (
	"errors"
	"fmt"
)

var (
	// ErrStructureMismatch indicates that a block function's blocks or index
	// labels do not match the expected structure of a shell.
	ErrStructureMismatch = errors.New("blockstructure: structure mismatch")

	// ErrInvalidSpace indicates a space argument that is neither Solver nor Sumk.
	// It matches ErrStructureMismatch under errors.Is.
	ErrInvalidSpace = fmt.Errorf("%w: space must be %q or %q", ErrStructureMismatch, Solver, Sumk)

	// ErrShellOutOfRange indicates a shell index outside the structure tables.
	ErrShellOutOfRange = errors.New("blockstructure: shell index out of range")

	// ErrShellCount indicates a per-shell argument whose length does not match
	// the number of shells.
	ErrShellCount = errors.New("blockstructure: wrong number of shells")

	// ErrUnknownIndex indicates a (block, index) pair that the current mapping
	// does not know about.
	ErrUnknownIndex = errors.New("blockstructure: unknown block or index")

	// ErrUnknownBlock indicates an equivalence group or transform naming a block
	// that is not part of the solver structure.
	ErrUnknownBlock = errors.New("blockstructure: unknown block")

	// ErrDuplicateLabel indicates a repeated index label within a block, or two
	// sources relabeled onto the same target.
	ErrDuplicateLabel = errors.New("blockstructure: duplicate index label")

	// ErrInvalidLabel indicates an index label value that is neither an integer
	// nor a string.
	ErrInvalidLabel = errors.New("blockstructure: invalid index label")

	// ErrDecode indicates a persisted dict that cannot be decoded.
	ErrDecode = errors.New("blockstructure: cannot decode")
)

// shellErrorf attaches operation and shell context to a sentinel.
func shellErrorf(op string, ish int, err error) error {
	return fmt.Errorf("%s(shell %d): %w", op, ish, err)
}
