package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/hpm/pkg/cli"
	"github.com/m-mizutani/hpm/pkg/domain"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := cli.NewCommand()
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hpm: %v\n", err)
		os.Exit(domain.ExitCode(err))
	}
}
