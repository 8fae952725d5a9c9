package domain_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hpm/pkg/domain"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error exits zero",
			err:  nil,
			want: 0,
		},
		{
			name: "invalid invocation exits 2",
			err:  goerr.Wrap(domain.ErrInvalidInvocation, "unknown command \"foo\""),
			want: 2,
		},
		{
			name: "aborted prompt exits 1",
			err:  goerr.Wrap(domain.ErrInteractionAborted, "input closed"),
			want: 1,
		},
		{
			name: "execution failure mirrors the child exit code",
			err: goerr.Wrap(domain.ErrExecutionFailed, "systemctl exited with code 3",
				goerr.V(domain.KeyExitCode, 3)),
			want: 3,
		},
		{
			name: "launch failure without a child code exits 1",
			err:  goerr.Wrap(domain.ErrExecutionFailed, "the binary does not exist: systemctl"),
			want: 1,
		},
		{
			name: "interruption exits 130",
			err:  goerr.Wrap(domain.ErrInterrupted, "interrupted by the host"),
			want: 130,
		},
		{
			name: "unclassified errors exit 1",
			err:  errors.New("something else"),
			want: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, domain.ExitCode(tc.err), tc.want)
		})
	}
}
