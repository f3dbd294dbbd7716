// SPDX-License-Identifier: MIT
// Package: instance
//
// write.go - problem and answer output, 1-indexed.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/escort/joint"
)

// Write emits in using the problem file format.
func Write(w io.Writer, in *Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d\n", in.N, len(in.Edges), in.Budget, in.Threshold)
	fmt.Fprintf(bw, "%d %d %d %d\n", in.Start.A+1, in.Target.A+1, in.Start.B+1, in.Target.B+1)
	for _, e := range in.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.U+1, e.V+1)
	}

	return bw.Flush()
}

// WriteResult prints an answer.
//
// Found: the round count, then one line of A positions and one line of B
// positions, one entry per round boundary. Not found: rounds only, which is
// T+1 by construction of joint.Result.
func WriteResult(w io.Writer, res *joint.Result, path []joint.Pair) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrInvalid)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, res.Rounds)
	if res.Found {
		writeSide(bw, path, func(p joint.Pair) int { return p.A })
		writeSide(bw, path, func(p joint.Pair) int { return p.B })
	}

	return bw.Flush()
}

func writeSide(bw *bufio.Writer, path []joint.Pair, pick func(joint.Pair) int) {
	for i, p := range path {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(pick(p) + 1))
	}
	bw.WriteByte('\n')
}
