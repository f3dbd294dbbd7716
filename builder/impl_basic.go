// SPDX-License-Identifier: MIT
// Package: escort/builder
//
// impl_basic.go - Path, Cycle, Star and Complete constructors.
//
// Numbering inside each block (offset by the block start):
//   - Path:     0—1—…—(n-1)
//   - Cycle:    Path plus (n-1)—0
//   - Star:     center 0, leaves 1..n-1
//   - Complete: every pair i<j, emitted i asc then j asc

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor for the simple path P_n (n ≥ 1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := t.addBlock(n)
		for i := 0; i+1 < n; i++ {
			t.link(base+i, base+i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := t.addBlock(n)
		for i := 0; i < n; i++ {
			t.link(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Star returns a Constructor for a star with center 0 and n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := t.addBlock(n)
		for i := 1; i < n; i++ {
			t.link(base, base+i)
		}

		return nil
	}
}

// Complete returns a Constructor for K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := t.addBlock(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t.link(base+i, base+j)
			}
		}

		return nil
	}
}
