package verify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/builder"
	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/matrix"
	"github.com/katalvlaran/escort/verify"
)

func path5(t *testing.T) (*core.Graph, *matrix.Dense) {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	dist, err := bfs.AllPairs(g)
	require.NoError(t, err)

	return g, dist
}

func intPtr(v int) *int { return &v }

// failure asserts err is a *verify.Failure of the given kind and returns it.
func failure(t *testing.T, err error, kind error) *verify.Failure {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var f *verify.Failure
	require.True(t, errors.As(err, &f))

	return f
}

func TestCheck_ValidPath(t *testing.T) {
	_, dist := path5(t)
	p := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 4}, {A: 2, B: 4}}

	assert.NoError(t, verify.Check(2, p, dist, 0, nil))
	assert.NoError(t, verify.Check(2, p, dist, 1, nil))
	assert.True(t, verify.Verify(2, p, dist, 1, nil))
	assert.True(t, verify.Verify(2, p, dist, 1, intPtr(2)))
}

func TestCheck_RoundMismatch(t *testing.T) {
	_, dist := path5(t)
	p := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 4}, {A: 2, B: 4}}

	f := failure(t, verify.Check(3, p, dist, 0, nil), verify.ErrRoundMismatch)
	assert.Equal(t, -1, f.Index)
	assert.False(t, verify.Verify(3, p, dist, 0, nil))

	// The reference value takes precedence over the path length.
	failure(t, verify.Check(2, p, dist, 0, intPtr(4)), verify.ErrRoundMismatch)
	assert.NoError(t, verify.Check(4, p, dist, 0, intPtr(4)))
}

func TestCheck_UnsafePair(t *testing.T) {
	_, dist := path5(t)
	p := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 4}, {A: 2, B: 4}}

	// dist(2,4) == 2 is not > 2.
	f := failure(t, verify.Check(2, p, dist, 2, nil), verify.ErrUnsafePair)
	assert.Equal(t, 2, f.Index)
	assert.Contains(t, f.Error(), "index 2")
}

func TestCheck_UnreachableIsUnsafe(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Path(2))
	require.NoError(t, err)
	dist, err := bfs.AllPairs(g)
	require.NoError(t, err)

	f := failure(t, verify.Check(0, []joint.Pair{{A: 0, B: 2}}, dist, 0, nil), verify.ErrUnsafePair)
	assert.Equal(t, 0, f.Index)
}

func TestCheck_EmptyAndOutOfRange(t *testing.T) {
	_, dist := path5(t)

	failure(t, verify.Check(0, nil, dist, 0, nil), verify.ErrEmptyPath)
	// A not-found answer checked against its reference has no path.
	assert.NoError(t, verify.Check(7, nil, nil, 0, intPtr(7)))

	f := failure(t, verify.Check(0, []joint.Pair{{A: 0, B: 9}}, dist, 0, nil), verify.ErrVertexOutOfRange)
	assert.Equal(t, 0, f.Index)
	failure(t, verify.Check(0, []joint.Pair{{A: 0, B: 4}}, nil, 0, nil), verify.ErrVertexOutOfRange)
}

func TestCheckMoves(t *testing.T) {
	g, _ := path5(t)
	start, target := joint.Pair{A: 0, B: 4}, joint.Pair{A: 2, B: 4}

	ok := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 4}, {A: 2, B: 4}}
	assert.NoError(t, verify.CheckMoves(g, ok, start, target))

	jump := []joint.Pair{{A: 0, B: 4}, {A: 2, B: 4}}
	f := failure(t, verify.CheckMoves(g, jump, start, target), verify.ErrIllegalMove)
	assert.Equal(t, 1, f.Index)

	bJump := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 2}, {A: 2, B: 4}}
	failure(t, verify.CheckMoves(g, bJump, start, target), verify.ErrIllegalMove)

	f = failure(t, verify.CheckMoves(g, ok, joint.Pair{A: 1, B: 4}, target), verify.ErrEndpointMismatch)
	assert.Equal(t, 0, f.Index)
	f = failure(t, verify.CheckMoves(g, ok, start, joint.Pair{A: 3, B: 4}), verify.ErrEndpointMismatch)
	assert.Equal(t, 2, f.Index)

	failure(t, verify.CheckMoves(g, nil, start, target), verify.ErrEmptyPath)
	failure(t, verify.CheckMoves(nil, ok, start, target), verify.ErrVertexOutOfRange)
	failure(t, verify.CheckMoves(g, []joint.Pair{{A: 0, B: 7}}, start, target), verify.ErrVertexOutOfRange)
}

// Every path Search emits must pass both checks.
func TestSearchOutputAlwaysVerifies(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(8, 0.35),
		)
		require.NoError(t, err)
		dist, err := bfs.AllPairs(g)
		require.NoError(t, err)

		n := g.Order()
		p := joint.Problem{
			Start:  joint.Pair{A: int(seed) % n, B: int(seed*3+1) % n},
			Target: joint.Pair{A: int(seed*5+2) % n, B: int(seed*7) % n},
		}
		for _, d := range []int{0, 1} {
			res, err := joint.Search(g, dist, p, joint.Config{Budget: 12, Threshold: d})
			require.NoError(t, err)
			if !res.Found {
				assert.Equal(t, 13, res.Rounds)
				continue
			}
			path, err := res.Path()
			require.NoError(t, err)
			assert.NoError(t, verify.Check(res.Rounds, path, dist, d, nil), "seed %d D %d", seed, d)
			assert.NoError(t, verify.CheckMoves(g, path, p.Start, p.Target), "seed %d D %d", seed, d)
		}
	}
}
