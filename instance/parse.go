// SPDX-License-Identifier: MIT
// Package: instance
//
// parse.go - line-oriented reader for problem files.
//
// Blank lines are skipped; line numbers in errors are physical lines.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/joint"
)

const (
	maxLineBytes = 1 << 20

	// maxEdgeHint caps the edge slice preallocation; the header's m is not
	// trusted until the edge lines are actually read.
	maxEdgeHint = 1 << 16
)

// lineReader yields non-blank lines with their physical line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line; io.ErrUnexpectedEOF
// when input is exhausted.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if f := strings.Fields(lr.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.ErrUnexpectedEOF
}

// ints reads the next line and requires exactly k integers.
func (lr *lineReader) ints(k int, what string) ([]int, error) {
	fields, err := lr.next()
	if err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: line %d: missing %s", ErrMalformed, lr.line+1, what)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line+1, err)
	}
	if len(fields) != k {
		return nil, fmt.Errorf("%w: line %d: %s needs %d values, got %d",
			ErrMalformed, lr.line, what, k, len(fields))
	}
	out := make([]int, k)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %q is not an integer", ErrMalformed, lr.line, what, f)
		}
		out[i] = v
	}

	return out, nil
}

// vertex converts a 1-indexed id to 0-indexed, checking the range.
func (lr *lineReader) vertex(v, n int, what string) (int, error) {
	if v < 1 || v > n {
		return 0, fmt.Errorf("%w: line %d: %s %d outside [1,%d]", ErrMalformed, lr.line, what, v, n)
	}
	return v - 1, nil
}

// Parse reads one problem from r.
// Any deviation from the format, including trailing non-blank lines, wraps
// ErrMalformed.
func Parse(r io.Reader) (*Instance, error) {
	lr := newLineReader(r)

	head, err := lr.ints(4, "header (n m T D)")
	if err != nil {
		return nil, err
	}
	n, m, budget, threshold := head[0], head[1], head[2], head[3]
	switch {
	case n < 1:
		return nil, fmt.Errorf("%w: line %d: n=%d < 1", ErrMalformed, lr.line, n)
	case n > joint.MaxOrder:
		return nil, fmt.Errorf("%w: line %d: n=%d > %d", ErrMalformed, lr.line, n, joint.MaxOrder)
	case m < 0:
		return nil, fmt.Errorf("%w: line %d: m=%d < 0", ErrMalformed, lr.line, m)
	case budget < 0:
		return nil, fmt.Errorf("%w: line %d: T=%d < 0", ErrMalformed, lr.line, budget)
	case threshold < 0:
		return nil, fmt.Errorf("%w: line %d: D=%d < 0", ErrMalformed, lr.line, threshold)
	}

	ends, err := lr.ints(4, "endpoints (startA targetA startB targetB)")
	if err != nil {
		return nil, err
	}
	var zero [4]int
	for i, name := range []string{"startA", "targetA", "startB", "targetB"} {
		if zero[i], err = lr.vertex(ends[i], n, name); err != nil {
			return nil, err
		}
	}

	in := &Instance{
		N:         n,
		Budget:    budget,
		Threshold: threshold,
		Start:     joint.Pair{A: zero[0], B: zero[2]},
		Target:    joint.Pair{A: zero[1], B: zero[3]},
		Edges:     make([]core.Edge, 0, min(m, maxEdgeHint)),
	}
	for i := 0; i < m; i++ {
		uv, err := lr.ints(2, fmt.Sprintf("edge %d of %d", i+1, m))
		if err != nil {
			return nil, err
		}
		u, err := lr.vertex(uv[0], n, "edge endpoint")
		if err != nil {
			return nil, err
		}
		v, err := lr.vertex(uv[1], n, "edge endpoint")
		if err != nil {
			return nil, err
		}
		in.Edges = append(in.Edges, core.Edge{U: u, V: v})
	}

	if _, err := lr.next(); err != io.ErrUnexpectedEOF {
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line+1, err)
		}
		return nil, fmt.Errorf("%w: line %d: unexpected data after %d edges", ErrMalformed, lr.line, m)
	}

	return in, nil
}

// ParseFile opens path and parses it. Instance.Name is the base name without
// extension; errors are prefixed with path.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	in.Name = strings.TrimSuffix(base, filepath.Ext(base))

	return in, nil
}
