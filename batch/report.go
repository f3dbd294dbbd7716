// SPDX-License-Identifier: MIT
// Package: batch
//
// report.go - per-instance outcome and the aggregated report.

package batch

import (
	"fmt"
	"time"

	"github.com/katalvlaran/escort/joint"
)

// Status classifies one instance outcome.
type Status int

const (
	// StatusSolved means a schedule was found (and passed any checks).
	StatusSolved Status = iota
	// StatusInfeasible means no schedule exists within the budget.
	StatusInfeasible
	// StatusMismatch means the answer failed verification or disagreed
	// with the reference value.
	StatusMismatch
	// StatusMalformed means the file did not parse.
	StatusMalformed
	// StatusError covers I/O and other per-instance failures.
	StatusError
	// StatusCanceled marks instances not finished before cancellation.
	StatusCanceled
)

var statusNames = [...]string{"solved", "infeasible", "mismatch", "malformed", "error", "canceled"}

// String returns the lower-case metric label for s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Item is the outcome of one file.
type Item struct {
	File     string
	Name     string
	Status   Status
	Found    bool
	Rounds   int
	Expected *int // reference value, when an answer file was read
	Path     []joint.Pair
	Stats    joint.Stats
	Err      error // parse, I/O or *verify.Failure
	Elapsed  time.Duration
}

// Report aggregates a batch run. Items follow the input order.
type Report struct {
	Items   []Item
	Counts  map[Status]int
	Elapsed time.Duration
}

// Failed returns the items whose status is neither solved nor infeasible.
func (r *Report) Failed() []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Status != StatusSolved && it.Status != StatusInfeasible {
			out = append(out, it)
		}
	}

	return out
}

func (r *Report) tally() {
	r.Counts = make(map[Status]int, len(statusNames))
	for _, it := range r.Items {
		r.Counts[it.Status]++
	}
}
