package input_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrankamilli/touchfwd/pkg/input"
)

type recordedCmd struct {
	env  []string
	name string
	args []string
}

func TestXdotool_Commands(t *testing.T) {
	var cmds []recordedCmd
	x := input.NewXdotoolWithRunner(":2", func(_ context.Context, env []string, name string, args ...string) error {
		cmds = append(cmds, recordedCmd{env: env, name: name, args: args})
		return nil
	})
	ctx := context.Background()

	require.NoError(t, x.MoveTo(ctx, 2020, 50))
	require.NoError(t, x.ButtonDown(ctx, input.ButtonPrimary))
	require.NoError(t, x.ButtonUp(ctx, input.ButtonPrimary))

	require.Len(t, cmds, 3)
	for _, c := range cmds {
		assert.Equal(t, "xdotool", c.name)
		assert.Contains(t, c.env, "DISPLAY=:2")
	}
	assert.Equal(t, []string{"mousemove", "2020", "50"}, cmds[0].args)
	assert.Equal(t, []string{"mousedown", "1"}, cmds[1].args)
	assert.Equal(t, []string{"mouseup", "1"}, cmds[2].args)
}

func TestXdotool_PropagatesFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	x := input.NewXdotoolWithRunner("", func(context.Context, []string, string, ...string) error { return boom })
	assert.ErrorIs(t, x.MoveTo(context.Background(), 0, 0), boom)
}

func TestXdotool_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	x := input.NewXdotoolWithRunner("", func(ctx context.Context, _ []string, _ string, _ ...string) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, x.ButtonUp(ctx, input.ButtonPrimary), context.Canceled)
}
