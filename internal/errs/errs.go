// Package errs holds the sentinel errors shared across the chess packages.
// Callers wrap them with fmt.Errorf("...: %w", ...) and inspect them with
// errors.Is.
package errs

import "errors"

var (
	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrMissingKing indicates a board without exactly one king per color.
	ErrMissingKing = errors.New("board must hold exactly one king per color")

	// ErrStorageClosed indicates an operation on a closed store.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrNotFound indicates a missing storage record.
	ErrNotFound = errors.New("record not found")
)
