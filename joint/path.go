// SPDX-License-Identifier: MIT
// Package: joint
//
// path.go - parent-chain reconstruction.
//
// The arena holds one state per half-move. Only states with a closed round
// (TurnA) are reported, one per round, root included, so the emitted path has
// Rounds+1 entries from Start to Target.

package joint

import "fmt"

// Reconstruct walks from terminal back to the root and returns the
// round-closed positions in start-to-target order.
// Returns ErrNoTerminal when terminal is not a round-closed state of tree.
// Complexity: O(2·rounds) time, O(rounds) space.
func Reconstruct(tree *Tree, terminal StateID) ([]Pair, error) {
	st, ok := tree.At(terminal)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNoTerminal, terminal)
	}
	if st.Turn != TurnA {
		return nil, fmt.Errorf("%w: state %d has an open round", ErrNoTerminal, terminal)
	}

	path := make([]Pair, 0, st.Rounds+1)
	for id := terminal; id != NoParent; id = tree.states[id].Parent {
		cur := tree.states[id]
		if cur.Turn == TurnA {
			path = append(path, cur.Pair())
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
