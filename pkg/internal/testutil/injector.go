// Package testutil holds fakes shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamrankamilli/touchfwd/pkg/input"
)

// Call is one recorded injector invocation.
type Call struct {
	Op     string
	X, Y   int
	Button input.Button
}

func (c Call) String() string {
	if c.Op == "move" {
		return fmt.Sprintf("move(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%s(%s)", c.Op, c.Button)
}

func MoveCall(x, y int) Call       { return Call{Op: "move", X: x, Y: y} }
func DownCall(b input.Button) Call { return Call{Op: "down", Button: b} }
func UpCall(b input.Button) Call   { return Call{Op: "up", Button: b} }

// RecordingInjector records calls and optionally fails some of them.
type RecordingInjector struct {
	mu    sync.Mutex
	calls []Call
	// Fail returns the error for a call, or nil to let it succeed.
	Fail func(Call) error
	// Notify, when set, receives every recorded call.
	Notify chan Call
}

func (r *RecordingInjector) record(c Call) error {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	fail := r.Fail
	r.mu.Unlock()
	if r.Notify != nil {
		r.Notify <- c
	}
	if fail != nil {
		return fail(c)
	}
	return nil
}

func (r *RecordingInjector) MoveTo(_ context.Context, x, y int) error {
	return r.record(MoveCall(x, y))
}

func (r *RecordingInjector) ButtonDown(_ context.Context, b input.Button) error {
	return r.record(DownCall(b))
}

func (r *RecordingInjector) ButtonUp(_ context.Context, b input.Button) error {
	return r.record(UpCall(b))
}

// Calls returns a copy of the recorded calls.
func (r *RecordingInjector) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
