package display

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

type fakeGeometry struct {
	off   config.Offset
	err   error
	calls int
}

func (f *fakeGeometry) Offset(context.Context, string) (config.Offset, error) {
	f.calls++
	return f.off, f.err
}

func TestResolveOffset_ExplicitSkipsProvider(t *testing.T) {
	g := &fakeGeometry{off: config.Offset{X: 5, Y: 5}}
	off := ResolveOffset(context.Background(), &Opts{
		Name:     "VIRTUAL1",
		Explicit: &config.Offset{X: 1920, Y: 0},
		Provider: g,
	})
	assert.Equal(t, config.Offset{X: 1920, Y: 0}, off)
	assert.Equal(t, 0, g.calls)
}

func TestResolveOffset_FromProvider(t *testing.T) {
	g := &fakeGeometry{off: config.Offset{X: 1920, Y: 0}}
	off := ResolveOffset(context.Background(), &Opts{Name: "VIRTUAL1", Provider: g})
	assert.Equal(t, config.Offset{X: 1920, Y: 0}, off)
	assert.Equal(t, 1, g.calls)
}

func TestResolveOffset_FailureFallsBackToZero(t *testing.T) {
	g := &fakeGeometry{off: config.Offset{X: 9, Y: 9}, err: errors.New("xrandr: not found")}
	off := ResolveOffset(context.Background(), &Opts{Name: "VIRTUAL1", Provider: g})
	assert.Equal(t, config.Offset{}, off)

	assert.Equal(t, config.Offset{}, ResolveOffset(context.Background(), &Opts{Name: "VIRTUAL1"}))
}
