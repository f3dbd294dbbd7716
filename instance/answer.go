// SPDX-License-Identifier: MIT
// Package: instance
//
// answer.go - reference answer (".out") files.

package instance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AnswerExt is the extension of reference answer files.
const AnswerExt = ".out"

// AnswerPath maps a problem file path to its reference answer path:
// "dir/grid10-2.in" becomes "dir/grid10-2.out".
func AnswerPath(problemPath string) string {
	return strings.TrimSuffix(problemPath, filepath.Ext(problemPath)) + AnswerExt
}

// ReadAnswer reads the expected round count: the first non-blank line must
// hold exactly one integer.
func ReadAnswer(r io.Reader) (int, error) {
	vals, err := newLineReader(r).ints(1, "expected round count")
	if err != nil {
		return 0, err
	}

	return vals[0], nil
}

// ReadAnswerFile opens and reads a reference answer. A missing file yields an
// error satisfying errors.Is(err, fs.ErrNotExist).
func ReadAnswerFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	v, err := ReadAnswer(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
