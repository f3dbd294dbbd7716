// SPDX-License-Identifier: MIT
// Package: instance
//
// instance.go - the parsed problem and its projections onto core and joint.

package instance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/joint"
)

// Sentinel errors for instance handling.
var (
	// ErrMalformed is returned for input that does not follow the file format.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrInvalid is returned when an Instance value violates its invariants.
	ErrInvalid = errors.New("instance: invalid instance")

	// ErrNilInstance is returned if a nil instance pointer is passed.
	ErrNilInstance = errors.New("instance: instance is nil")
)

// Instance is one problem: a graph, a round budget, a separation threshold
// and the start/target pairs. All vertices are 0-indexed.
type Instance struct {
	Name      string
	N         int
	Edges     []core.Edge
	Budget    int // T
	Threshold int // D
	Start     joint.Pair
	Target    joint.Pair
}

// Validate checks vertex ranges and parameter signs.
func (in *Instance) Validate() error {
	if in == nil {
		return ErrNilInstance
	}
	if in.N < 1 || in.N > joint.MaxOrder {
		return fmt.Errorf("%w: n=%d outside [1,%d]", ErrInvalid, in.N, joint.MaxOrder)
	}
	if in.Budget < 0 {
		return fmt.Errorf("%w: T=%d < 0", ErrInvalid, in.Budget)
	}
	if in.Threshold < 0 {
		return fmt.Errorf("%w: D=%d < 0", ErrInvalid, in.Threshold)
	}
	for _, v := range []int{in.Start.A, in.Target.A, in.Start.B, in.Target.B} {
		if v < 0 || v >= in.N {
			return fmt.Errorf("%w: endpoint %d outside [0,%d)", ErrInvalid, v, in.N)
		}
	}
	for i, e := range in.Edges {
		if e.U < 0 || e.U >= in.N || e.V < 0 || e.V >= in.N {
			return fmt.Errorf("%w: edge %d (%d,%d) outside [0,%d)", ErrInvalid, i, e.U, e.V, in.N)
		}
	}

	return nil
}

// Graph builds the immutable adjacency for the instance.
func (in *Instance) Graph() (*core.Graph, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	return core.NewGraph(in.N, in.Edges)
}

// Problem returns the start and target pairs.
func (in *Instance) Problem() joint.Problem {
	return joint.Problem{Start: in.Start, Target: in.Target}
}

// Config returns the search parameters.
func (in *Instance) Config() joint.Config {
	return joint.Config{Budget: in.Budget, Threshold: in.Threshold}
}
