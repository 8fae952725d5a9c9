package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hpm/pkg/domain"
	"github.com/m-mizutani/hpm/pkg/domain/model"
)

func TestActions(t *testing.T) {
	t.Run("canonical order", func(t *testing.T) {
		actions := model.Actions()
		gt.Equal(t, len(actions), 3)
		gt.Equal(t, actions[0], model.ActionKill)
		gt.Equal(t, actions[1], model.ActionRestart)
		gt.Equal(t, actions[2], model.ActionLogout)
	})

	t.Run("every action has a name and usage", func(t *testing.T) {
		for _, action := range model.Actions() {
			gt.True(t, action.String() != "unknown")
			gt.True(t, action.Usage() != "")
		}
	})
}

func TestActionByName(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   model.Action
		wantOK bool
	}{
		{name: "kill", input: "kill", want: model.ActionKill, wantOK: true},
		{name: "restart", input: "restart", want: model.ActionRestart, wantOK: true},
		{name: "logout", input: "logout", want: model.ActionLogout, wantOK: true},
		{name: "case insensitive", input: "Restart", want: model.ActionRestart, wantOK: true},
		{name: "unknown word", input: "foo", want: model.ActionUnknown, wantOK: false},
		{name: "empty", input: "", want: model.ActionUnknown, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := model.ActionByName(tc.input)
			gt.Equal(t, action, tc.want)
			gt.Equal(t, ok, tc.wantOK)
		})
	}
}

func TestExternalCommand(t *testing.T) {
	t.Run("kill maps to systemctl poweroff", func(t *testing.T) {
		cmd, err := model.ActionKill.ExternalCommand()
		gt.NoError(t, err)
		gt.Equal(t, cmd.Name, "systemctl")
		gt.Equal(t, cmd.Args, []string{"poweroff"})
	})

	t.Run("restart maps to systemctl reboot", func(t *testing.T) {
		cmd, err := model.ActionRestart.ExternalCommand()
		gt.NoError(t, err)
		gt.Equal(t, cmd.Name, "systemctl")
		gt.Equal(t, cmd.Args, []string{"reboot"})
	})

	t.Run("logout terminates the current user session", func(t *testing.T) {
		t.Setenv("USER", "tester")

		cmd, err := model.ActionLogout.ExternalCommand()
		gt.NoError(t, err)
		gt.Equal(t, cmd.Name, "loginctl")
		gt.Equal(t, cmd.Args, []string{"terminate-user", "tester"})
	})

	t.Run("logout without $USER is an invalid invocation", func(t *testing.T) {
		t.Setenv("USER", "")

		_, err := model.ActionLogout.ExternalCommand()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidInvocation))
	})

	t.Run("unknown action has no external command", func(t *testing.T) {
		_, err := model.ActionUnknown.ExternalCommand()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidInvocation))
	})
}
