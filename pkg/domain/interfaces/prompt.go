package interfaces

import (
	"context"

	"github.com/m-mizutani/hpm/pkg/domain/model"
)

// Prompter obtains one power action from the user interactively.
type Prompter interface {
	Select(ctx context.Context) (model.Action, error)
}
