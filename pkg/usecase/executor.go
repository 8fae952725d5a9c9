package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hpm/pkg/domain"
	"github.com/m-mizutani/hpm/pkg/domain/interfaces"
	"github.com/m-mizutani/hpm/pkg/domain/model"
)

type Executor struct {
	runner interfaces.Runner
	stdout io.Writer
}

// NewExecutor creates an Executor that spawns through the given runner and
// forwards the child's stdout to w on success.
func NewExecutor(runner interfaces.Runner, w io.Writer) *Executor {
	return &Executor{
		runner: runner,
		stdout: w,
	}
}

// Execute spawns the external utility for the resolved action and waits for
// it. A failure is terminal for the invocation: power actions must not be
// reissued, so there is no retry path.
func (e *Executor) Execute(ctx context.Context, action model.Action) error {
	logger := ctxlog.From(ctx)

	cmd, err := action.ExternalCommand()
	if err != nil {
		return err
	}

	logger.Debug("spawning external utility",
		slog.String("binary", cmd.Name),
		slog.Any("args", cmd.Args),
	)

	result, err := e.runner.Run(ctx, cmd.Name, cmd.Args...)
	if err != nil {
		return err
	}

	if result.ExitCode != 0 {
		msg := fmt.Sprintf("%s exited with code %d", cmd.Name, result.ExitCode)
		if stderr := strings.TrimSpace(string(result.Stderr)); stderr != "" {
			msg += ": " + stderr
		}
		return goerr.Wrap(domain.ErrExecutionFailed, msg,
			goerr.V(domain.KeyBinary, cmd.Name),
			goerr.V(domain.KeyExitCode, result.ExitCode),
		)
	}

	if len(result.Stdout) > 0 {
		if _, err := e.stdout.Write(result.Stdout); err != nil {
			return goerr.Wrap(err, "failed to write to stdout")
		}
	}

	logger.Debug("external utility succeeded",
		slog.String("binary", cmd.Name),
	)
	return nil
}
