package cli

import (
	"context"

	"github.com/m-mizutani/hpm/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// NewCommand builds the hpm command tree. One subcommand per power action,
// derived from model.Actions() so the CLI surface and the interactive menu
// cannot drift apart.
func NewCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "Open interactive mode",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	}

	cmds := make([]*cli.Command, 0, len(model.Actions()))
	for _, action := range model.Actions() {
		cmds = append(cmds, newActionCommand(action))
	}

	return &cli.Command{
		Name:    "hpm",
		Usage:   "Host power management dispatcher",
		Version: "0.1.0",
		Description: `hpm forwards a power-management intent (power off, restart, logout) to the
host's service and session managers. It decides nothing itself: the chosen
action is handed to systemctl or loginctl and their verdict becomes hpm's
exit status.`,
		Flags:    flags,
		Action:   RunRoot,
		Commands: cmds,
	}
}

func newActionCommand(action model.Action) *cli.Command {
	return &cli.Command{
		Name:  action.String(),
		Usage: action.Usage(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runAction(ctx, cmd, model.Invocation{
				Subcommand:  action.String(),
				Interactive: cmd.Bool("interactive"),
			})
		},
	}
}
