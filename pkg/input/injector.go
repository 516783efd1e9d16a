package input

import (
	"context"
	"fmt"
)

// Button identifies a pointer button.
type Button uint8

// ButtonPrimary is the button pressed by Down and released by Up.
const ButtonPrimary Button = 1

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// Injector delivers pointer actions to the local input system. Calls are
// synchronous and return early once ctx is done; an error affects only the
// call that returned it. Implementations must be safe for concurrent use.
type Injector interface {
	MoveTo(ctx context.Context, x, y int) error
	ButtonDown(ctx context.Context, b Button) error
	ButtonUp(ctx context.Context, b Button) error
}

// Type is an enum used for selecting an injector.
type Type string

const (
	TypeRobotgo = "robotgo"
	TypeXdotool = "xdotool"
)

// GetInjector returns the injector for t. xDisplay is the X display passed
// to subprocess-based injectors.
func GetInjector(t Type, xDisplay string) (Injector, error) {
	switch t {
	case TypeRobotgo:
		return NewRobotgo(), nil
	case TypeXdotool:
		return NewXdotool(xDisplay), nil
	default:
		return nil, fmt.Errorf("unknown injector %q", t)
	}
}
