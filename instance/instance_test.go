package instance_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/instance"
	"github.com/katalvlaran/escort/joint"
)

const (
	// Path 1-2-3-4-5; A walks 1→3 while B waits at 5.
	pathInput = "5 4 2 0\n1 3 5 5\n1 2\n2 3\n3 4\n4 5\n"

	// 6-cycle; A and B swap sides keeping distance > 1.
	cycleInput = "6 6 10 1\n1 4 4 1\n1 2\n2 3\n3 4\n4 5\n5 6\n6 1\n"
)

func TestParse_Valid(t *testing.T) {
	in, err := instance.Parse(strings.NewReader(pathInput))
	require.NoError(t, err)

	assert.Equal(t, 5, in.N)
	assert.Equal(t, 2, in.Budget)
	assert.Equal(t, 0, in.Threshold)
	assert.Equal(t, joint.Pair{A: 0, B: 4}, in.Start)
	assert.Equal(t, joint.Pair{A: 2, B: 4}, in.Target)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, in.Edges)
	assert.Equal(t, joint.Config{Budget: 2, Threshold: 0}, in.Config())
	assert.Equal(t, joint.Problem{Start: in.Start, Target: in.Target}, in.Problem())

	g, err := in.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
}

func TestParse_BlankLinesAndSpacing(t *testing.T) {
	in, err := instance.Parse(strings.NewReader("\n  3 1 4 0 \n\n1 3\t3 1\n\n2 3\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, in.N)
	assert.Equal(t, []core.Edge{{U: 1, V: 2}}, in.Edges)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"empty", "", "line 1"},
		{"short header", "3 1 4\n", "line 1"},
		{"non-integer", "3 1 x 0\n", "line 1"},
		{"zero vertices", "0 0 1 0\n", "line 1"},
		{"too many vertices", "32768 0 1 0\n", "line 1"},
		{"huge n overflowing n squared", "9223372036854775807 0 1 0\n", "line 1"},
		{"edge count larger than file", "2 1099511627776 5 0\n1 2 2 1\n1 2\n", "line 4"},
		{"negative edges", "3 -1 1 0\n", "line 1"},
		{"negative budget", "3 0 -1 0\n", "line 1"},
		{"negative threshold", "3 0 1 -2\n", "line 1"},
		{"missing endpoints", "3 0 1 0\n", "line 2"},
		{"endpoint out of range", "3 0 1 0\n1 4 2 3\n", "line 2"},
		{"endpoint zero", "3 0 1 0\n0 1 2 3\n", "line 2"},
		{"missing edge", "3 2 1 0\n1 2 3 1\n1 2\n", "line 4"},
		{"edge arity", "3 1 1 0\n1 2 3 1\n1 2 3\n", "line 3"},
		{"edge out of range", "3 1 1 0\n1 2 3 1\n1 9\n", "line 3"},
		{"trailing data", "3 1 1 0\n1 2 3 1\n1 2\n2 3\n", "line 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, instance.ErrMalformed)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "grid10-2.in")
	require.NoError(t, os.WriteFile(p, []byte(cycleInput), 0o644))

	in, err := instance.ParseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "grid10-2", in.Name)

	bad := filepath.Join(dir, "bad.in")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n"), 0o644))
	_, err = instance.ParseFile(bad)
	require.ErrorIs(t, err, instance.ErrMalformed)
	assert.Contains(t, err.Error(), bad)

	_, err = instance.ParseFile(filepath.Join(dir, "missing.in"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWrite_RoundTrip(t *testing.T) {
	in, err := instance.Parse(strings.NewReader(cycleInput))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in))
	assert.Equal(t, cycleInput, buf.String())
}

func TestValidate(t *testing.T) {
	var nilInst *instance.Instance
	assert.ErrorIs(t, nilInst.Validate(), instance.ErrNilInstance)

	base := instance.Instance{N: 3, Budget: 1, Start: joint.Pair{A: 0, B: 2}, Target: joint.Pair{A: 2, B: 0}}
	require.NoError(t, base.Validate())

	bad := base
	bad.Target.B = 3
	assert.ErrorIs(t, bad.Validate(), instance.ErrInvalid)

	bad = base
	bad.Edges = []core.Edge{{U: 0, V: -1}}
	assert.ErrorIs(t, bad.Validate(), instance.ErrInvalid)

	bad = base
	bad.N = joint.MaxOrder + 1
	assert.ErrorIs(t, bad.Validate(), instance.ErrInvalid)

	bad = base
	bad.Budget = -1
	assert.ErrorIs(t, instance.Write(&bytes.Buffer{}, &bad), instance.ErrInvalid)
}

func TestAnswers(t *testing.T) {
	assert.Equal(t, "testcases/grid10-2.out", instance.AnswerPath("testcases/grid10-2.in"))
	assert.Equal(t, "x.out", instance.AnswerPath("x"))

	v, err := instance.ReadAnswer(strings.NewReader("\n 17 \n"))
	require.NoError(t, err)
	assert.Equal(t, 17, v)

	_, err = instance.ReadAnswer(strings.NewReader("17 3\n"))
	assert.ErrorIs(t, err, instance.ErrMalformed)
	_, err = instance.ReadAnswer(strings.NewReader(""))
	assert.ErrorIs(t, err, instance.ErrMalformed)

	dir := t.TempDir()
	p := filepath.Join(dir, "a.out")
	require.NoError(t, os.WriteFile(p, []byte("4\n"), 0o644))
	v, err = instance.ReadAnswerFile(p)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = instance.ReadAnswerFile(filepath.Join(dir, "none.out"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func solveString(t *testing.T, input string, opts ...joint.Option) (*instance.Solution, string) {
	t.Helper()
	in, err := instance.Parse(strings.NewReader(input))
	require.NoError(t, err)
	sol, err := instance.Solve(context.Background(), in, opts...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.WriteResult(&buf, sol.Result, sol.Path))

	return sol, buf.String()
}

func TestSolve_Found(t *testing.T) {
	sol, out := solveString(t, pathInput)
	assert.True(t, sol.Result.Found)
	assert.Equal(t, "2\n1 2 3\n5 5 5\n", out)

	_, out = solveString(t, cycleInput)
	assert.Equal(t, "3\n1 2 3 4\n4 5 6 1\n", out)
}

func TestSolve_NotFoundPrintsBudgetPlusOne(t *testing.T) {
	sol, out := solveString(t, strings.Replace(pathInput, "5 4 2 0", "5 4 1 0", 1))
	assert.False(t, sol.Result.Found)
	assert.Nil(t, sol.Path)
	assert.Equal(t, "2\n", out)
}

func TestSolve_Errors(t *testing.T) {
	_, err := instance.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, instance.ErrNilInstance)

	in, err := instance.Parse(strings.NewReader(cycleInput))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = instance.Solve(ctx, in)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = instance.Solve(context.Background(), in, joint.WithDedupKey(joint.DedupKey(7)))
	assert.ErrorIs(t, err, joint.ErrOptionViolation)

	assert.Error(t, instance.WriteResult(&bytes.Buffer{}, nil, nil))
}
