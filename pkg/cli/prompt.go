package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hpm/pkg/domain"
	"github.com/m-mizutani/hpm/pkg/domain/interfaces"
	"github.com/m-mizutani/hpm/pkg/domain/model"
	"github.com/mattn/go-isatty"
)

const maxPromptAttempts = 3

type Prompt struct {
	in       io.Reader
	out      io.Writer
	colorize bool
}

// NewPrompt creates a Prompter that reads selections from in and writes the
// menu to out. The menu is colored only when out is a terminal.
func NewPrompt(in io.Reader, out io.Writer) interfaces.Prompter {
	colorize := false
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colorize = true
	}

	return &Prompt{
		in:       in,
		out:      out,
		colorize: colorize,
	}
}

// Select shows the numbered action menu once and reads one selection. Both
// the 1-based index and the action name are accepted. An invalid selection
// is reported and re-asked up to maxPromptAttempts times; end of input
// aborts the prompt.
func (p *Prompt) Select(ctx context.Context) (model.Action, error) {
	logger := ctxlog.From(ctx)

	if f, ok := p.in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		logger.Debug("stdin is not a terminal, reading selection from pipe")
	}

	if err := p.showMenu(); err != nil {
		return model.ActionUnknown, goerr.Wrap(err, "failed to write prompt")
	}

	reader := bufio.NewReader(p.in)
	for attempt := 1; attempt <= maxPromptAttempts; attempt++ {
		line, readErr := reader.ReadString('\n')
		input := strings.TrimSpace(line)

		if readErr != nil && input == "" {
			return model.ActionUnknown, goerr.Wrap(domain.ErrInteractionAborted,
				"input closed before a selection was made")
		}

		if action, ok := parseSelection(input); ok {
			logger.Debug("selection accepted",
				slog.String("action", action.String()),
			)
			return action, nil
		}

		fmt.Fprintf(p.out, "Invalid selection %q, try again\n", input)

		// The last line of a closed stream was invalid; nothing more to read.
		if readErr != nil {
			return model.ActionUnknown, goerr.Wrap(domain.ErrInteractionAborted,
				"input closed before a selection was made")
		}
	}

	return model.ActionUnknown, goerr.Wrap(domain.ErrInteractionAborted,
		fmt.Sprintf("no valid selection after %d attempts", maxPromptAttempts))
}

func (p *Prompt) showMenu() error {
	if _, err := fmt.Fprintln(p.out, "Select the command you wish to execute:"); err != nil {
		return err
	}

	for i, action := range model.Actions() {
		num := fmt.Sprintf("(%d)", i+1)
		if p.colorize {
			num = color.New(color.FgCyan).Sprint(num)
		}
		if _, err := fmt.Fprintf(p.out, "  %s %s: %s\n", num, action.String(), action.Usage()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(p.out, "> ")
	return err
}

func parseSelection(input string) (model.Action, bool) {
	if input == "" {
		return model.ActionUnknown, false
	}

	if idx, err := strconv.Atoi(input); err == nil {
		actions := model.Actions()
		if idx >= 1 && idx <= len(actions) {
			return actions[idx-1], true
		}
		return model.ActionUnknown, false
	}

	return model.ActionByName(input)
}
