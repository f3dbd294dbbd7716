// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go - canonical shape and structure checks.
//
// Each validator returns a tagged sentinel so callers can branch with errors.Is.
// All checks are pure and allocate nothing.

package matrix

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateOrder checks that m is square with exactly n rows.
// Complexity: O(1).
func ValidateOrder(m *Dense, n int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r != n {
		return matrixErrorf("ValidateOrder", ErrBadShape)
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] over the upper triangle.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks m[i][i] == 0 for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		if m.data[i*m.r+i] != 0 {
			return matrixErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}
