// SPDX-License-Identifier: MIT
// Package: escort/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex base + r*cols + c (row-major, see GridIndex).
//   - For each cell emit Right then Bottom neighbor when present.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := t.addBlock(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + GridIndex(r, c, cols)
				if c+1 < cols {
					t.link(u, base+GridIndex(r, c+1, cols))
				}
				if r+1 < rows {
					t.link(u, base+GridIndex(r+1, c, cols))
				}
			}
		}

		return nil
	}
}
