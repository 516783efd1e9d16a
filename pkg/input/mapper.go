package input

import (
	"context"
	"fmt"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

// Mapper translates TouchEvents into local pointer actions. It keeps no
// state between events and is safe for concurrent use.
type Mapper struct {
	injector Injector
	offset   config.Offset
	actions  map[protocol.Kind]Action
}

// NewMapper returns a mapper that adds offset to every coordinate.
func NewMapper(inj Injector, offset config.Offset) *Mapper {
	actions := make(map[protocol.Kind]Action)
	for _, a := range GetDefaults() {
		actions[a.Kind()] = a
	}
	return &Mapper{injector: inj, offset: offset, actions: actions}
}

// Adjust translates remote coordinates into local display coordinates.
func (m *Mapper) Adjust(x, y int32) (int, int) {
	return int(x) + m.offset.X, int(y) + m.offset.Y
}

// Map issues the injector calls for ev. The returned error describes failed
// injector calls; it never means later events should be skipped.
func (m *Mapper) Map(ctx context.Context, ev protocol.TouchEvent) error {
	a, ok := m.actions[ev.Kind]
	if !ok {
		return fmt.Errorf("no action for %s", ev.Kind)
	}
	x, y := m.Adjust(ev.X, ev.Y)
	if err := a.Apply(ctx, m.injector, x, y); err != nil {
		return fmt.Errorf("%s at (%d,%d): %w", ev.Kind, x, y, err)
	}
	return nil
}
