// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go - sentinel errors. Call sites wrap them with %w and a method tag.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for negative dimensions or an unexpected order.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange is returned when an index lies outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry is returned when m[i][j] != m[j][i] for some i, j.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when some m[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix is returned for a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
