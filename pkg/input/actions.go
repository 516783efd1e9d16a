package input

import (
	"context"
	"errors"

	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

// Action maps one event kind to injector calls.
type Action interface {
	Kind() protocol.Kind
	Apply(ctx context.Context, inj Injector, x, y int) error
}

// DefaultActions lists the actions installed on a new Mapper.
var DefaultActions = []Action{
	&Down{},
	&Up{},
	&Move{},
}

// GetDefaults returns a copy of DefaultActions.
func GetDefaults() []Action {
	out := make([]Action, len(DefaultActions))
	copy(out, DefaultActions)
	return out
}

// Down moves to the touch point and presses the primary button. Both calls are
// issued even if the first fails.
type Down struct{}

func (d *Down) Kind() protocol.Kind { return protocol.KindDown }

func (d *Down) Apply(ctx context.Context, inj Injector, x, y int) error {
	moveErr := inj.MoveTo(ctx, x, y)
	downErr := inj.ButtonDown(ctx, ButtonPrimary)
	return errors.Join(moveErr, downErr)
}

// Up releases the primary button where the pointer already is.
type Up struct{}

func (u *Up) Kind() protocol.Kind { return protocol.KindUp }

func (u *Up) Apply(ctx context.Context, inj Injector, _, _ int) error {
	return inj.ButtonUp(ctx, ButtonPrimary)
}

// Move moves the pointer.
type Move struct{}

func (m *Move) Kind() protocol.Kind { return protocol.KindMove }

func (m *Move) Apply(ctx context.Context, inj Injector, x, y int) error {
	return inj.MoveTo(ctx, x, y)
}
