package interfaces

import (
	"context"

	"github.com/m-mizutani/hpm/pkg/domain/model"
)

// Runner spawns one external process and reports its outcome. It is the only
// capability in the program that can change host state; tests substitute a
// recording fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*model.RunResult, error)
}
