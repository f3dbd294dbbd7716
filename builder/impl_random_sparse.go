// SPDX-License-Identifier: MIT
// Package: escort/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p) sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - RNG required only when 0 < p < 1 (else ErrNeedRandSource).
//   - Unordered pairs {i,j}, i<j, are sampled i asc then j asc; one draw per pair.
//
// Complexity: O(n²) draws.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each pair independently
// with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := t.addBlock(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case stochastic:
					if cfg.rng.Float64() < p {
						t.link(base+i, base+j)
					}
				case p == probMax:
					t.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
