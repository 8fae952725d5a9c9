package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hpm/pkg/domain"
	"github.com/m-mizutani/hpm/pkg/domain/interfaces"
	"github.com/m-mizutani/hpm/pkg/domain/model"
)

type Resolver struct {
	prompter interfaces.Prompter
}

// NewResolver creates a Resolver. The prompter is consulted only for
// interactive invocations.
func NewResolver(prompter interfaces.Prompter) *Resolver {
	return &Resolver{prompter: prompter}
}

// Resolve maps a parsed CLI invocation to exactly one action, or fails with
// ErrInvalidInvocation before anything can be spawned. An explicit command
// combined with the interactive flag is rejected as ambiguous.
func (r *Resolver) Resolve(ctx context.Context, inv model.Invocation) (model.Action, error) {
	logger := ctxlog.From(ctx)

	if inv.Subcommand != "" && inv.Interactive {
		return model.ActionUnknown, goerr.Wrap(domain.ErrInvalidInvocation,
			fmt.Sprintf("the interactive flag conflicts with the explicit command %q", inv.Subcommand),
			goerr.V(domain.KeyInput, inv.Subcommand))
	}

	if inv.Subcommand != "" {
		action, ok := model.ActionByName(inv.Subcommand)
		if !ok {
			return model.ActionUnknown, goerr.Wrap(domain.ErrInvalidInvocation,
				fmt.Sprintf("unknown command %q", inv.Subcommand),
				goerr.V(domain.KeyInput, inv.Subcommand))
		}

		logger.Debug("resolved explicit command",
			slog.String("action", action.String()),
		)
		return action, nil
	}

	if inv.Interactive {
		action, err := r.prompter.Select(ctx)
		if err != nil {
			return model.ActionUnknown, err
		}

		logger.Debug("resolved interactive selection",
			slog.String("action", action.String()),
		)
		return action, nil
	}

	return model.ActionUnknown, goerr.Wrap(domain.ErrInvalidInvocation,
		"no command given and interactive mode not requested, see --help",
		goerr.V(domain.KeyInput, ""))
}
