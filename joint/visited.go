package joint

// visitedSet is an insert-if-absent set over packed state keys.
//
// A key packs (a, b) as a*n+b. Under PositionsAndTurn the B-to-move states
// live in a second plane offset by n², so the same positions on different
// turns never collide.
type visitedSet struct {
	n      int
	planes int
	seen   []bool
}

func newVisitedSet(n int, dedup DedupKey) *visitedSet {
	planes := 1
	if dedup == PositionsAndTurn {
		planes = 2
	}

	return &visitedSet{n: n, planes: planes, seen: make([]bool, planes*n*n)}
}

// key packs a state into its dedup key.
func (v *visitedSet) key(a, b int, turn Turn) int {
	k := a*v.n + b
	if v.planes == 2 && turn == TurnB {
		k += v.n * v.n
	}

	return k
}

// insert marks the state and reports whether it was absent.
func (v *visitedSet) insert(a, b int, turn Turn) bool {
	k := v.key(a, b, turn)
	if v.seen[k] {
		return false
	}
	v.seen[k] = true

	return true
}
