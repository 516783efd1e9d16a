package input

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// commandTimeout bounds a single xdotool invocation.
const commandTimeout = 2 * time.Second

// Runner executes an external command. It must return once ctx is done.
type Runner func(ctx context.Context, env []string, name string, args ...string) error

// Xdotool injects pointer actions by running the xdotool utility.
type Xdotool struct {
	env []string
	run Runner
}

// NewXdotool returns an injector that targets the given X display. An empty
// xDisplay inherits DISPLAY from the environment.
func NewXdotool(xDisplay string) *Xdotool {
	return NewXdotoolWithRunner(xDisplay, runCommand)
}

// NewXdotoolWithRunner is NewXdotool with a custom command runner.
func NewXdotoolWithRunner(xDisplay string, run Runner) *Xdotool {
	env := os.Environ()
	if xDisplay != "" {
		env = append(env, "DISPLAY="+xDisplay)
	}
	return &Xdotool{env: env, run: run}
}

func (x *Xdotool) MoveTo(ctx context.Context, px, py int) error {
	return x.run(ctx, x.env, "xdotool", "mousemove", strconv.Itoa(px), strconv.Itoa(py))
}

func (x *Xdotool) ButtonDown(ctx context.Context, b Button) error {
	return x.run(ctx, x.env, "xdotool", "mousedown", strconv.Itoa(int(b)))
}

func (x *Xdotool) ButtonUp(ctx context.Context, b Button) error {
	return x.run(ctx, x.env, "xdotool", "mouseup", strconv.Itoa(int(b)))
}

func runCommand(ctx context.Context, env []string, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w (%w)", err, ctxErr)
		}
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
