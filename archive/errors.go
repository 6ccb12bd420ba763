// SPDX-License-Identifier: MIT

package archive

import "errors"

// Sentinel errors for the archive store and type registry.
var (
	// ErrUnknownType indicates an entry whose type name was never registered.
	ErrUnknownType = errors.New("archive: unknown type")

	// ErrNotFound indicates a Get for a key that is not stored.
	ErrNotFound = errors.New("archive: key not found")

	// ErrMalformed indicates a file or entry that does not have the archive layout.
	ErrMalformed = errors.New("archive: malformed entry")
)
