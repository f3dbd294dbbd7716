// SPDX-License-Identifier: MIT
// Package: verify
//
// verify.go - round-count and separation checks for an emitted path.

package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/matrix"
)

// Sentinel errors; every *Failure unwraps to exactly one of them.
var (
	// ErrRoundMismatch is returned when the claimed round count disagrees with
	// the path length or with the expected reference value.
	ErrRoundMismatch = errors.New("verify: round count mismatch")

	// ErrUnsafePair is returned when a pair on the path is not separated.
	ErrUnsafePair = errors.New("verify: pair violates separation")

	// ErrEmptyPath is returned when a path is required but none was given.
	ErrEmptyPath = errors.New("verify: empty path")

	// ErrVertexOutOfRange is returned when a path vertex is outside the
	// distance matrix or the graph.
	ErrVertexOutOfRange = errors.New("verify: vertex out of range")

	// ErrEndpointMismatch is returned when the path does not start at the
	// start pair or end at the target pair.
	ErrEndpointMismatch = errors.New("verify: path endpoints mismatch")

	// ErrIllegalMove is returned when an agent jumps more than one edge
	// between consecutive rounds.
	ErrIllegalMove = errors.New("verify: illegal move")
)

// Failure describes the first rule a path breaks.
// Index is the offending path position, or -1 when the failure is not tied
// to a single position.
type Failure struct {
	Kind   error
	Index  int
	Detail string
}

// Error implements error.
func (f *Failure) Error() string {
	if f.Index < 0 {
		return fmt.Sprintf("%v: %s", f.Kind, f.Detail)
	}
	return fmt.Sprintf("%v at index %d: %s", f.Kind, f.Index, f.Detail)
}

// Unwrap exposes Kind to errors.Is.
func (f *Failure) Unwrap() error { return f.Kind }

func fail(kind error, idx int, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Index: idx, Detail: fmt.Sprintf(format, args...)}
}

// Verify reports whether Check finds nothing wrong.
func Verify(claimed int, path []joint.Pair, dist *matrix.Dense, threshold int, expected *int) bool {
	return Check(claimed, path, dist, threshold, expected) == nil
}

// Check validates a claimed answer.
//
// With expected == nil, claimed must equal len(path)-1. With expected set,
// claimed must equal *expected instead and the path may be empty (a
// not-found answer carries no path). Every pair on the path must satisfy
// joint.Separated(dist[a][b], threshold).
//
// The returned error is nil or a *Failure.
func Check(claimed int, path []joint.Pair, dist *matrix.Dense, threshold int, expected *int) error {
	if expected != nil {
		if claimed != *expected {
			return fail(ErrRoundMismatch, -1, "claimed %d, expected %d", claimed, *expected)
		}
	} else {
		if len(path) == 0 {
			return fail(ErrEmptyPath, -1, "claimed %d rounds", claimed)
		}
		if claimed != len(path)-1 {
			return fail(ErrRoundMismatch, -1, "claimed %d, path has %d rounds", claimed, len(path)-1)
		}
	}
	if len(path) > 0 && dist == nil {
		return fail(ErrVertexOutOfRange, -1, "nil distance matrix")
	}

	for i, p := range path {
		d, err := dist.At(p.A, p.B)
		if err != nil {
			return fail(ErrVertexOutOfRange, i, "pair (%d,%d): %v", p.A, p.B, err)
		}
		if !joint.Separated(d, threshold) {
			return fail(ErrUnsafePair, i, "pair (%d,%d) at distance %d, need > %d", p.A, p.B, d, threshold)
		}
	}

	return nil
}

// CheckMoves validates path against g: path[0] == start, the last entry
// equals target, and between consecutive entries each agent either stays or
// crosses one edge. The returned error is nil or a *Failure.
func CheckMoves(g *core.Graph, path []joint.Pair, start, target joint.Pair) error {
	if len(path) == 0 {
		return fail(ErrEmptyPath, -1, "no rounds to check")
	}
	if g == nil {
		return fail(ErrVertexOutOfRange, -1, "nil graph")
	}
	for i, p := range path {
		if !g.HasVertex(p.A) || !g.HasVertex(p.B) {
			return fail(ErrVertexOutOfRange, i, "pair (%d,%d), n=%d", p.A, p.B, g.Order())
		}
	}
	if path[0] != start {
		return fail(ErrEndpointMismatch, 0, "got %v, want start %v", path[0], start)
	}
	last := len(path) - 1
	if path[last] != target {
		return fail(ErrEndpointMismatch, last, "got %v, want target %v", path[last], target)
	}

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if !adjacentOrSame(g, prev.A, cur.A) {
			return fail(ErrIllegalMove, i, "agent A %d -> %d", prev.A, cur.A)
		}
		if !adjacentOrSame(g, prev.B, cur.B) {
			return fail(ErrIllegalMove, i, "agent B %d -> %d", prev.B, cur.B)
		}
	}

	return nil
}

func adjacentOrSame(g *core.Graph, u, v int) bool {
	return u == v || g.HasEdge(u, v)
}
