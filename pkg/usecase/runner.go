package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hpm/pkg/domain"
	"github.com/m-mizutani/hpm/pkg/domain/interfaces"
	"github.com/m-mizutani/hpm/pkg/domain/model"
)

type execRunner struct{}

// NewRunner returns the os/exec backed Runner used outside of tests.
func NewRunner() interfaces.Runner {
	return &execRunner{}
}

// Run validates that the binary is on $PATH, spawns it with the given
// arguments and waits for it. A non-zero child exit is a regular RunResult,
// not an error; errors are reserved for launch failures and interruption.
func (r *execRunner) Run(ctx context.Context, name string, args ...string) (*model.RunResult, error) {
	logger := ctxlog.From(ctx)

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, goerr.Wrap(domain.ErrExecutionFailed,
			fmt.Sprintf("the binary does not exist: %s", name),
			goerr.V(domain.KeyBinary, name))
	}

	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 - argv comes from the closed Action set
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return nil, goerr.Wrap(domain.ErrInterrupted, "interrupted by the host")
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// ExitCode is negative when the child was killed by a signal.
			if exitErr.ExitCode() < 0 {
				return nil, goerr.Wrap(domain.ErrInterrupted, "interrupted by the host")
			}

			logger.Debug("external process exited with failure",
				slog.String("binary", name),
				slog.Int("exit_code", exitErr.ExitCode()),
			)
			return &model.RunResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
			}, nil
		}

		return nil, goerr.Wrap(domain.ErrExecutionFailed,
			fmt.Sprintf("failed to execute the binary %s: %v", name, runErr),
			goerr.V(domain.KeyBinary, name))
	}

	logger.Debug("external process exited",
		slog.String("binary", name),
		slog.Int("exit_code", 0),
	)
	return &model.RunResult{
		ExitCode: 0,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}
