package cli

import (
	"io"

	"github.com/m-mizutani/hpm/pkg/domain/interfaces"
)

// Export for testing

// WithTestRunner swaps the process runner used by the command tree and
// returns a restore function.
func WithTestRunner(r interfaces.Runner) func() {
	prev := newRunner
	newRunner = func() interfaces.Runner { return r }
	return func() { newRunner = prev }
}

// WithTestIO swaps the prompt input and the stdout writer and returns a
// restore function.
func WithTestIO(in io.Reader, out io.Writer) func() {
	prevIn, prevOut := promptIn, stdout
	promptIn, stdout = in, out
	return func() { promptIn, stdout = prevIn, prevOut }
}

var ParseSelection = parseSelection
