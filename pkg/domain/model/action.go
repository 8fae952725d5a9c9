package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hpm/pkg/domain"
)

// Action is a host power-management intent. The set is closed; switches over
// Action must be exhaustive so that adding a variant breaks loudly.
type Action int

const (
	ActionUnknown Action = iota
	ActionKill
	ActionRestart
	ActionLogout
)

// Actions returns the selectable actions in canonical order. The subcommand
// set and the interactive menu are both derived from this list, so index i in
// the menu always matches the i-th subcommand.
func Actions() []Action {
	return []Action{ActionKill, ActionRestart, ActionLogout}
}

func (a Action) String() string {
	switch a {
	case ActionKill:
		return "kill"
	case ActionRestart:
		return "restart"
	case ActionLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// Usage returns the one-line help text shown for the action in the command
// tree and the interactive menu.
func (a Action) Usage() string {
	switch a {
	case ActionKill:
		return "Power off the system"
	case ActionRestart:
		return "Restart the system"
	case ActionLogout:
		return "Logout from the current $USER"
	default:
		return ""
	}
}

// ActionByName maps a subcommand or menu label to its Action. Matching is
// case-insensitive.
func ActionByName(name string) (Action, bool) {
	for _, a := range Actions() {
		if a.String() == strings.ToLower(name) {
			return a, true
		}
	}
	return ActionUnknown, false
}

// Command is the fixed external utility invocation an Action maps to.
type Command struct {
	Name string
	Args []string
}

// ExternalCommand resolves the external utility invocation for the action.
// Logout terminates the session of the current $USER; an unset $USER is
// reported before anything is spawned.
func (a Action) ExternalCommand() (*Command, error) {
	switch a {
	case ActionKill:
		return &Command{Name: "systemctl", Args: []string{"poweroff"}}, nil
	case ActionRestart:
		return &Command{Name: "systemctl", Args: []string{"reboot"}}, nil
	case ActionLogout:
		user := os.Getenv("USER")
		if user == "" {
			return nil, goerr.Wrap(domain.ErrInvalidInvocation,
				"$USER must be set for 'hpm logout'",
				goerr.V(domain.KeyInput, "logout"))
		}
		return &Command{Name: "loginctl", Args: []string{"terminate-user", user}}, nil
	default:
		return nil, goerr.Wrap(domain.ErrInvalidInvocation,
			fmt.Sprintf("no external command for action %q", a.String()),
			goerr.V(domain.KeyInput, a.String()))
	}
}
