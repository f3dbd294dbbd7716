// SPDX-License-Identifier: MIT
// Package: joint
//
// tree.go - arena of search states linked by parent index.
//
// Invariants:
//   - states[0] is the root (Parent == NoParent) once the search has started.
//   - Parent indexes always point to a smaller index, so parent chains are acyclic.
//   - Rounds never decreases along a parent edge.

package joint

// StateID indexes a State inside a Tree.
type StateID int32

// MaxOrder is the largest graph order Search accepts: the arena holds at most
// 2·n²+1 states, and every index must fit in a StateID.
const MaxOrder = 32767

// NoParent marks the root state, and a missing terminal.
const NoParent StateID = -1

// State is one node of the product search space.
type State struct {
	A      int
	B      int
	Turn   Turn
	Rounds int
	Parent StateID
}

// Pair returns the agents' positions.
func (s State) Pair() Pair { return Pair{A: s.A, B: s.B} }

// Tree owns every state created during one search.
type Tree struct {
	states []State
}

// newTree preallocates room for capHint states.
func newTree(capHint int) *Tree {
	return &Tree{states: make([]State, 0, capHint)}
}

// push appends s and returns its index.
func (t *Tree) push(s State) StateID {
	t.states = append(t.states, s)

	return StateID(len(t.states) - 1)
}

// Len returns the number of states in the arena.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.states)
}

// At returns the state at id.
func (t *Tree) At(id StateID) (State, bool) {
	if t == nil || id < 0 || int(id) >= len(t.states) {
		return State{}, false
	}

	return t.states[id], true
}
