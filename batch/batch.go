// SPDX-License-Identifier: MIT
// Package: batch
//
// batch.go - bounded worker pool over problem files.

package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/escort/instance"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/verify"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")

	// ErrPanic marks an item whose processing panicked; the panic value is
	// part of the message.
	ErrPanic = errors.New("batch: instance processing panicked")
)

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the batch settings.
type Options struct {
	// Workers bounds concurrently solved instances.
	Workers int

	// CheckAnswers compares each answer with "<name>.out" when it exists.
	CheckAnswers bool

	// Verify re-checks every found path for separation and move legality.
	Verify bool

	// Dedup is passed to joint.Search.
	Dedup joint.DedupKey

	// Logger receives per-instance and summary records.
	Logger *slog.Logger

	// Metrics, if non-nil, observes every finished instance.
	Metrics *Metrics

	// OnItem is called for every processed item, on the worker goroutine,
	// before metrics and logging. A panic here is contained to that item.
	OnItem func(it *Item)

	err error
}

// DefaultOptions returns one worker per CPU, answer checking on, path
// verification off, PositionsAndTurn and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:      runtime.NumCPU(),
		CheckAnswers: true,
		Dedup:        joint.PositionsAndTurn,
		Logger:       slog.New(slog.DiscardHandler),
		OnItem:       func(*Item) {},
	}
}

// WithWorkers sets the pool size; 0 means one per CPU, negative is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}

// WithAnswerCheck toggles reference-answer comparison.
func WithAnswerCheck(on bool) Option {
	return func(o *Options) { o.CheckAnswers = on }
}

// WithVerify toggles path re-verification.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}

// WithDedupKey selects the joint search visited-set equality.
func WithDedupKey(k joint.DedupKey) Option {
	return func(o *Options) {
		switch k {
		case joint.PositionsAndTurn, joint.PositionsOnly:
			o.Dedup = k
		default:
			o.err = fmt.Errorf("%w: dedup key %d", ErrOptionViolation, int(k))
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches a collector set.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithOnItem registers a per-item callback; nil is ignored.
func WithOnItem(fn func(it *Item)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnItem = fn
		}
	}
}

// Run solves files concurrently. Per-instance failures are recorded in the
// report and never abort the run; only ctx cancellation does, in which case
// unfinished items keep StatusCanceled and the context error is returned.
func Run(ctx context.Context, files []string, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := time.Now()
	rep := &Report{Items: make([]Item, len(files))}
	for i, f := range files {
		rep.Items[i] = Item{File: f, Status: StatusCanceled}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			it := solveOne(gctx, files[i], &o)
			rep.Items[i] = it
			o.Metrics.observe(&it)
			logItem(o.Logger, &it)
			if it.Status == StatusCanceled {
				return it.Err
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	rep.Elapsed = time.Since(start)
	rep.tally()
	o.Logger.Info("batch finished",
		"files", len(files),
		"solved", rep.Counts[StatusSolved],
		"infeasible", rep.Counts[StatusInfeasible],
		"failed", len(rep.Failed()),
		"elapsed", rep.Elapsed,
	)

	return rep, err
}

// solveOne runs parse, solve, checks and the OnItem hook for one file.
// A panic anywhere in that sequence turns the item into StatusError.
func solveOne(ctx context.Context, file string, o *Options) (it Item) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			it = Item{
				File:   file,
				Name:   it.Name,
				Status: StatusError,
				Err:    fmt.Errorf("%w: %v", ErrPanic, r),
			}
		}
		it.Elapsed = time.Since(start)
	}()

	it = Item{File: file}
	it.finish(solveInto(ctx, &it, o))
	it.Elapsed = time.Since(start)
	o.OnItem(&it)

	return it
}

// finish maps a pipeline error onto the item status.
func (it *Item) finish(err error) {
	if err == nil {
		return
	}
	it.Err = err
	var vf *verify.Failure
	switch {
	case errors.As(err, &vf):
		it.Status = StatusMismatch
	case errors.Is(err, instance.ErrMalformed):
		it.Status = StatusMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		it.Status = StatusCanceled
	default:
		it.Status = StatusError
	}
}

func solveInto(ctx context.Context, it *Item, o *Options) error {
	in, err := instance.ParseFile(it.File)
	if err != nil {
		return err
	}
	it.Name = in.Name

	sol, err := instance.Solve(ctx, in, joint.WithDedupKey(o.Dedup))
	if err != nil {
		return err
	}
	res := sol.Result
	it.Found, it.Rounds, it.Path, it.Stats = res.Found, res.Rounds, sol.Path, res.Stats
	if res.Found {
		it.Status = StatusSolved
	} else {
		it.Status = StatusInfeasible
	}

	if o.Verify && res.Found {
		if err := verify.Check(res.Rounds, sol.Path, sol.Dist, in.Threshold, nil); err != nil {
			return err
		}
		if err := verify.CheckMoves(sol.Graph, sol.Path, in.Start, in.Target); err != nil {
			return err
		}
	}

	if o.CheckAnswers {
		want, err := instance.ReadAnswerFile(instance.AnswerPath(it.File))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil
		case err != nil:
			return err
		}
		it.Expected = &want
		return verify.Check(res.Rounds, sol.Path, sol.Dist, in.Threshold, &want)
	}

	return nil
}

func logItem(log *slog.Logger, it *Item) {
	switch it.Status {
	case StatusSolved, StatusInfeasible:
		log.Debug("instance done",
			"file", it.File,
			"status", it.Status.String(),
			"rounds", it.Rounds,
			"expanded", it.Stats.Expanded,
			"elapsed", it.Elapsed,
		)
	case StatusMismatch:
		log.Warn("verification failed", "file", it.File, "rounds", it.Rounds, "error", it.Err)
	case StatusCanceled:
		log.Debug("instance canceled", "file", it.File)
	default:
		log.Error("instance failed", "file", it.File, "status", it.Status.String(), "error", it.Err)
	}
}

// ExpandGlobs resolves patterns to a duplicate-free file list, in pattern
// order with each pattern's matches sorted. A pattern without matches is kept literally so the missing
// file is reported as a failed item rather than silently skipped.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("batch: pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			matches = []string{p}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	return out, nil
}
