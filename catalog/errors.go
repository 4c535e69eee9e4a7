// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource indicates a case with no matrix source, or more than one.
	ErrNoSource = errors.New("catalog: case needs exactly one of matrix, rows, hilbert")

	// ErrNoVector indicates a non-Hilbert case without vector or rhs.
	ErrNoVector = errors.New("catalog: case has no right-hand side")

	// ErrDuplicateName indicates two cases sharing a name.
	ErrDuplicateName = errors.New("catalog: duplicate case name")

	// ErrUnknownCase is returned by Lookup for a missing name.
	ErrUnknownCase = errors.New("catalog: unknown case")

	// ErrBadSize indicates a non-positive or unparsable dimension header.
	ErrBadSize = errors.New("catalog: invalid matrix size")

	// ErrShortInput indicates fewer values than the dimension requires.
	ErrShortInput = errors.New("catalog: not enough values")

	// ErrBadValue indicates a token that is not a number.
	ErrBadValue = errors.New("catalog: malformed number")

	// ErrShape indicates an .npy payload of the wrong rank or shape.
	ErrShape = errors.New("catalog: unexpected array shape")
)

// catalogErrorf prefixes err with the failing case or file.
func catalogErrorf(where string, err error) error {
	return fmt.Errorf("%s: %w", where, err)
}
