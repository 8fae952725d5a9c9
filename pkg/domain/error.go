package domain

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidInvocation  = goerr.New("invalid invocation")
	ErrInteractionAborted = goerr.New("interactive prompt aborted")
	ErrExecutionFailed    = goerr.New("external command failed")
	ErrInterrupted        = goerr.New("interrupted")
)

// Keys of goerr values attached to the sentinel errors above.
const (
	KeyBinary   = "binary"
	KeyExitCode = "exit_code"
	KeyInput    = "input"
)

// ExitCode maps an error returned from the command tree to the process exit
// status: 0 on success, 2 for an invalid invocation, 130 when the dispatched
// utility was interrupted, and the utility's own exit code when it failed.
// Anything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrInterrupted):
		return 130
	case errors.Is(err, ErrInvalidInvocation):
		return 2
	case errors.Is(err, ErrExecutionFailed):
		if code, ok := exitCodeValue(err); ok && code > 0 {
			return code
		}
		return 1
	default:
		return 1
	}
}

func exitCodeValue(err error) (int, bool) {
	goErr := goerr.Unwrap(err)
	if goErr == nil {
		return 0, false
	}

	code, ok := goErr.Values()[KeyExitCode].(int)
	return code, ok
}
