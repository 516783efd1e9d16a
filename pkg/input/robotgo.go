package input

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-vgo/robotgo"
)

// robotgoOps are the native calls made by Robotgo.
type robotgoOps struct {
	move func(x, y int)
	down func(button string) error
	up   func(button string) error
}

var nativeOps = robotgoOps{
	move: func(x, y int) { robotgo.Move(x, y) },
	down: func(button string) error { return robotgo.MouseDown(button) },
	up:   func(button string) error { return robotgo.MouseUp(button) },
}

// Robotgo injects pointer actions through the native input APIs. robotgo
// shares one X connection per process, so calls are serialized.
type Robotgo struct {
	mu  sync.Mutex
	ops robotgoOps
}

func NewRobotgo() *Robotgo {
	return &Robotgo{ops: nativeOps}
}

var robotgoButtons = map[Button]string{
	ButtonPrimary: "left",
}

func (r *Robotgo) MoveTo(_ context.Context, x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops.move(x, y)
	return nil
}

func (r *Robotgo) ButtonDown(_ context.Context, b Button) error {
	name, ok := robotgoButtons[b]
	if !ok {
		return fmt.Errorf("robotgo: unsupported %s", b)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ops.down(name)
}

func (r *Robotgo) ButtonUp(_ context.Context, b Button) error {
	name, ok := robotgoButtons[b]
	if !ok {
		return fmt.Errorf("robotgo: unsupported %s", b)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ops.up(name)
}
