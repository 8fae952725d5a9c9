package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hpm/pkg/domain/model"
	"github.com/m-mizutani/hpm/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Replaced in tests so the command tree can run without touching host power
// state or the real terminal.
var (
	newRunner           = usecase.NewRunner
	promptIn  io.Reader = os.Stdin
	stdout    io.Writer = os.Stdout
)

// RunRoot handles invocations without a known subcommand: interactive mode,
// an unknown command word, or no arguments at all. The resolver sorts out
// which of those it is.
func RunRoot(ctx context.Context, cmd *cli.Command) error {
	return runAction(ctx, cmd, model.Invocation{
		Subcommand:  cmd.Args().First(),
		Interactive: cmd.Bool("interactive"),
	})
}

func runAction(ctx context.Context, cmd *cli.Command, inv model.Invocation) error {
	ctx = loggerContext(ctx, cmd)

	resolver := usecase.NewResolver(NewPrompt(promptIn, stdout))
	action, err := resolver.Resolve(ctx, inv)
	if err != nil {
		return err
	}

	executor := usecase.NewExecutor(newRunner(), stdout)
	return executor.Execute(ctx, action)
}

func loggerContext(ctx context.Context, cmd *cli.Command) context.Context {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	return ctxlog.With(ctx, logger)
}
