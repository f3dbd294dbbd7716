package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/escort/core"
)

// walker encapsulates mutable single-source BFS state.
// depth doubles as the visited set: Unreachable means "not seen yet".
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	depth []int
}

// From runs breadth-first search on g from src and returns the hop depth of
// every vertex (Unreachable where src cannot reach, or beyond MaxDepth).
// Returns ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, a context
// error, or a wrapped OnVisit error.
func From(g *core.Graph, src int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, src)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		depth: make([]int, n),
	}
	if err = w.run(src); err != nil {
		return nil, err
	}

	return w.depth, nil
}

// run seeds the queue with src and processes it until empty.
func (w *walker) run(src int) error {
	for i := range w.depth {
		w.depth[i] = Unreachable
	}
	w.enqueue(src, 0)

	// Index-based head avoids reslicing; the queue never exceeds n entries.
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[head]
		d := w.depth[v]
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(v) {
			if w.depth[nbr] == Unreachable {
				w.enqueue(nbr, d+1)
			}
		}
	}

	return nil
}

// enqueue records the first-visit depth of v and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}
