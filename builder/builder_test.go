package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escort/builder"
	"github.com/katalvlaran/escort/core"
)

// TestBuilders_Functional runs table-driven checks of counts and sample edges.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, g.Degree(0))
				assert.False(t, g.HasEdge(1, 2))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.GridIndex(0, 1, 3), builder.GridIndex(1, 1, 3)))
				assert.False(t, g.HasEdge(builder.GridIndex(0, 2, 3), builder.GridIndex(1, 0, 3)))
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		ctor builder.Constructor
		want error
	}{
		{builder.Path(0), builder.ErrTooFewVertices},
		{builder.Cycle(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Complete(0), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for _, c := range cases {
		_, err := builder.BuildGraph(nil, c.ctor)
		assert.ErrorIs(t, err, c.want)
	}
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestBuildGraph_DisjointBlocks verifies that composed constructors never share vertices.
func TestBuildGraph_DisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.True(t, g.HasEdge(3, 5))
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			assert.False(t, g.HasEdge(u, v))
		}
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
