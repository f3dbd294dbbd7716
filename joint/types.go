package joint

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for joint search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("joint: graph is nil")

	// ErrDistanceShape is returned when the distance matrix is nil or not n×n.
	ErrDistanceShape = errors.New("joint: distance matrix does not match graph order")

	// ErrVertexOutOfRange is returned when a start or target vertex is not in the graph.
	ErrVertexOutOfRange = errors.New("joint: vertex out of range")

	// ErrNegativeBudget is returned when Config.Budget < 0.
	ErrNegativeBudget = errors.New("joint: round budget is negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("joint: invalid option supplied")

	// ErrGraphTooLarge is returned when the graph order exceeds MaxOrder.
	ErrGraphTooLarge = errors.New("joint: graph too large for the state arena")

	// ErrNoTerminal is returned when a path is requested without a terminal state.
	ErrNoTerminal = errors.New("joint: no terminal state")
)

// Turn says which agent moves next.
type Turn uint8

const (
	// TurnA marks a closed round: A moves next.
	TurnA Turn = iota
	// TurnB marks a half-finished round: A has moved, B owes its move.
	TurnB
)

// String returns "A" or "B".
func (t Turn) String() string {
	if t == TurnB {
		return "B"
	}
	return "A"
}

// DedupKey selects the equality used by the visited set.
type DedupKey int

const (
	// PositionsAndTurn deduplicates on (A, B, turn).
	PositionsAndTurn DedupKey = iota
	// PositionsOnly deduplicates on (A, B).
	PositionsOnly
)

// String returns the canonical flag/config spelling.
func (k DedupKey) String() string {
	switch k {
	case PositionsAndTurn:
		return "positions-turn"
	case PositionsOnly:
		return "positions"
	default:
		return fmt.Sprintf("DedupKey(%d)", int(k))
	}
}

// ParseDedupKey accepts "positions-turn" or "positions" (case-insensitive).
func ParseDedupKey(s string) (DedupKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positions-turn", "positions_and_turn", "":
		return PositionsAndTurn, nil
	case "positions", "positions_only":
		return PositionsOnly, nil
	default:
		return 0, fmt.Errorf("%w: unknown dedup key %q", ErrOptionViolation, s)
	}
}

// Pair holds one vertex per agent (0-indexed).
type Pair struct {
	A int
	B int
}

// Problem fixes where both agents start and where they must end.
type Problem struct {
	Start  Pair
	Target Pair
}

// Config is the immutable per-search parameter set.
//
// Budget is the maximum number of rounds T; Threshold is the separation D that
// every B half-move must strictly exceed.
type Config struct {
	Budget    int
	Threshold int
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued state.
	Ctx context.Context

	// Dedup selects the visited-set equality.
	Dedup DedupKey

	// OnExpand is called for every state before its successors are generated.
	OnExpand func(s State)

	// OnPrune is called for every B candidate rejected by the separation rule.
	OnPrune func(a, candidateB int)

	err error
}

// DefaultOptions returns background context, PositionsAndTurn and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Dedup:    PositionsAndTurn,
		OnExpand: func(State) {},
		OnPrune:  func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDedupKey selects the visited-set equality.
// Unknown keys are recorded and surface as ErrOptionViolation.
func WithDedupKey(k DedupKey) Option {
	return func(o *Options) {
		switch k {
		case PositionsAndTurn, PositionsOnly:
			o.Dedup = k
		default:
			o.err = fmt.Errorf("%w: dedup key %d", ErrOptionViolation, int(k))
		}
	}
}

// WithOnExpand registers a callback run for every expanded state.
func WithOnExpand(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPrune registers a callback run for every pruned B candidate.
func WithOnPrune(fn func(a, candidateB int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded int // states whose successors were generated
	Enqueued int // states pushed into the queue, root included
	Pruned   int // B candidates rejected by the separation rule
	Deduped  int // successors dropped because their key was already seen
}

// Result is the outcome of Search.
//
// Found reports whether a terminal state exists within the budget. Rounds is
// the minimal round count when found and Budget+1 otherwise. Terminal indexes
// the terminal state in Tree (NoParent when not found).
type Result struct {
	Found    bool
	Rounds   int
	Terminal StateID
	Tree     *Tree
	Stats    Stats
	Dedup    DedupKey
}

// Path reconstructs the round-by-round positions from start to target.
// Returns ErrNoTerminal when the search found nothing.
func (r *Result) Path() ([]Pair, error) {
	if r == nil || !r.Found {
		return nil, ErrNoTerminal
	}

	return Reconstruct(r.Tree, r.Terminal)
}
