package providers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

// OutputFunc runs a command and returns its standard output.
type OutputFunc func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

// Xrandr reads display geometry from `xrandr --current`.
type Xrandr struct {
	env    []string
	output OutputFunc
}

// NewXrandr returns an xrandr provider for the given X display.
func NewXrandr(xDisplay string) *Xrandr {
	return NewXrandrWithOutput(xDisplay, commandOutput)
}

// NewXrandrWithOutput is NewXrandr with a custom command runner.
func NewXrandrWithOutput(xDisplay string, output OutputFunc) *Xrandr {
	env := os.Environ()
	if xDisplay != "" {
		env = append(env, "DISPLAY="+xDisplay)
	}
	return &Xrandr{env: env, output: output}
}

func (x *Xrandr) Offset(ctx context.Context, name string) (config.Offset, error) {
	out, err := x.output(ctx, x.env, "xrandr", "--current")
	if err != nil {
		return config.Offset{}, fmt.Errorf("xrandr: %w", err)
	}
	return ParseXrandr(string(out), name)
}

// geometryRe matches a mode and position such as 1920x1080+1920+0.
var geometryRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// ParseXrandr extracts the position of the connected output called name from
// xrandr output.
func ParseXrandr(out, name string) (config.Offset, error) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, " connected") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != name || fields[1] != "connected" {
			continue
		}
		for _, f := range fields[2:] {
			m := geometryRe.FindStringSubmatch(f)
			if m == nil {
				continue
			}
			x, err := strconv.Atoi(m[3])
			if err != nil {
				return config.Offset{}, fmt.Errorf("parse x of %q: %w", f, err)
			}
			y, err := strconv.Atoi(m[4])
			if err != nil {
				return config.Offset{}, fmt.Errorf("parse y of %q: %w", f, err)
			}
			return config.Offset{X: x, Y: y}, nil
		}
		return config.Offset{}, fmt.Errorf("%w: %s", ErrDisplayInactive, name)
	}
	if err := sc.Err(); err != nil {
		return config.Offset{}, err
	}
	return config.Offset{}, fmt.Errorf("%w: %s", ErrDisplayNotFound, name)
}

func commandOutput(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	return cmd.Output()
}
