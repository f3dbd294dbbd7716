// SPDX-License-Identifier: MIT
// Package: joint
//
// search.go - turn-alternating BFS with the B-move separation constraint.

package joint

import (
	"context"
	"fmt"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/matrix"
)

// Separated reports whether a hop distance keeps the agents apart under
// threshold D. Unreachable pairs are never separated.
func Separated(d, threshold int) bool {
	return d != bfs.Unreachable && d > threshold
}

// searcher encapsulates mutable search state.
type searcher struct {
	graph   *core.Graph
	dist    *matrix.Dense
	cfg     Config
	problem Problem
	opts    Options
	ctx     context.Context

	tree    *Tree
	queue   []StateID
	visited *visitedSet
	stats   Stats
}

// Search finds the minimal number of rounds that moves both agents from
// p.Start to p.Target with every B half-move separated by more than
// cfg.Threshold, within cfg.Budget rounds.
//
// Infeasibility is not an error: the Result has Found == false and
// Rounds == cfg.Budget+1. Errors are reserved for invalid inputs
// (ErrGraphNil, ErrGraphTooLarge, ErrDistanceShape, ErrVertexOutOfRange,
// ErrNegativeBudget, ErrOptionViolation) and context cancellation.
//
// If either the start pair or the target pair is not separated the search
// reports not found without expanding anything: no path through such a pair
// can satisfy the separation invariant.
func Search(g *core.Graph, dist *matrix.Dense, p Problem, cfg Config, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if n > MaxOrder {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrGraphTooLarge, n, MaxOrder)
	}
	if err := matrix.ValidateOrder(dist, n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDistanceShape, err)
	}
	for _, v := range []int{p.Start.A, p.Start.B, p.Target.A, p.Target.B} {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, v, n)
		}
	}
	if cfg.Budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, cfg.Budget)
	}

	s := &searcher{
		graph:   g,
		dist:    dist,
		cfg:     cfg,
		problem: p,
		opts:    o,
		ctx:     o.Ctx,
		tree:    newTree(2 * n),
		queue:   make([]StateID, 0, 2*n),
		visited: newVisitedSet(n, o.Dedup),
	}

	return s.run()
}

// notFound builds the canonical infeasible result.
func (s *searcher) notFound() *Result {
	return &Result{
		Found:    false,
		Rounds:   s.cfg.Budget + 1,
		Terminal: NoParent,
		Tree:     s.tree,
		Stats:    s.stats,
		Dedup:    s.opts.Dedup,
	}
}

// found builds the result for terminal id.
func (s *searcher) found(id StateID) *Result {
	st := s.tree.states[id]

	return &Result{
		Found:    true,
		Rounds:   st.Rounds,
		Terminal: id,
		Tree:     s.tree,
		Stats:    s.stats,
		Dedup:    s.opts.Dedup,
	}
}

// separated looks up dist[a][b] against the threshold; indices are pre-validated.
func (s *searcher) separated(a, b int) bool {
	d, _ := s.dist.At(a, b)
	return Separated(d, s.cfg.Threshold)
}

// enqueue records st in the arena and appends it to the queue.
func (s *searcher) enqueue(st State) {
	id := s.tree.push(st)
	s.queue = append(s.queue, id)
	s.stats.Enqueued++
}

// run drives the BFS until a terminal state, exhaustion, or cancellation.
func (s *searcher) run() (*Result, error) {
	start, target := s.problem.Start, s.problem.Target
	if !s.separated(start.A, start.B) || !s.separated(target.A, target.B) {
		return s.notFound(), nil
	}

	s.visited.insert(start.A, start.B, TurnA)
	s.enqueue(State{A: start.A, B: start.B, Turn: TurnA, Rounds: 0, Parent: NoParent})

	for head := 0; head < len(s.queue); head++ {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		id := s.queue[head]
		st := s.tree.states[id]

		if st.A == target.A && st.B == target.B {
			if st.Turn == TurnA {
				return s.found(id), nil
			}
			// B still owes its move: close the round with B staying put.
			// The target pair is separated, so the stay is legal.
			if st.Rounds+1 > s.cfg.Budget {
				return s.notFound(), nil
			}
			closing := s.tree.push(State{A: st.A, B: st.B, Turn: TurnA, Rounds: st.Rounds + 1, Parent: id})

			return s.found(closing), nil
		}

		if st.Rounds >= s.cfg.Budget {
			continue
		}
		s.expand(id, st)
	}

	return s.notFound(), nil
}

// expand generates the successors of st: stay first, then neighbors in
// ascending order, for whichever agent is to move.
func (s *searcher) expand(id StateID, st State) {
	s.stats.Expanded++
	s.opts.OnExpand(st)

	if st.Turn == TurnA {
		s.moveA(id, st, st.A)
		for _, next := range s.graph.Neighbors(st.A) {
			s.moveA(id, st, next)
		}
		return
	}

	s.moveB(id, st, st.B)
	for _, next := range s.graph.Neighbors(st.B) {
		s.moveB(id, st, next)
	}
}

// moveA enqueues A's half-move to next; the round stays open.
func (s *searcher) moveA(parent StateID, st State, next int) {
	if !s.visited.insert(next, st.B, TurnB) {
		s.stats.Deduped++
		return
	}
	s.enqueue(State{A: next, B: st.B, Turn: TurnB, Rounds: st.Rounds, Parent: parent})
}

// moveB enqueues B's half-move to next if it keeps the agents separated,
// closing the round.
func (s *searcher) moveB(parent StateID, st State, next int) {
	if !s.separated(st.A, next) {
		s.stats.Pruned++
		s.opts.OnPrune(st.A, next)
		return
	}
	if !s.visited.insert(st.A, next, TurnA) {
		s.stats.Deduped++
		return
	}
	s.enqueue(State{A: st.A, B: next, Turn: TurnA, Rounds: st.Rounds + 1, Parent: parent})
}
