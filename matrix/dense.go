// SPDX-License-Identifier: MIT
// Package: matrix
//
// dense.go - row-major int storage and safe accessors.

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf wraps err with the method tag and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix of ints.
type Dense struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense allocates an r×c zero matrix. A 0×0 matrix is valid and represents
// the distance table of an empty graph.
// Errors: ErrBadShape when rows or cols is negative.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFilled allocates an r×c matrix with every cell set to v.
func NewFilled(rows, cols, v int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for i := range d.data {
			d.data[i] = v
		}
	}

	return d, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// inBounds reports whether (i,j) addresses a cell.
func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.r && j >= 0 && j < d.c
}

// At returns m[i][j].
func (d *Dense) At(i, j int) (int, error) {
	if !d.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns m[i][j] = v.
func (d *Dense) Set(i, j, v int) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Row returns row i as a slice aliasing the internal buffer.
// Writes through the slice mutate the matrix; readers MUST treat it as read-only.
func (d *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return d.data[i*d.c : (i+1)*d.c : (i+1)*d.c], nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]int, len(d.data))}
	copy(out.data, d.data)

	return out
}

// Equal reports whether a and b have the same shape and identical cells.
// Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", d.data[i*d.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
