package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

var (
	// ErrDisplayNotFound is returned when no output has the requested name.
	ErrDisplayNotFound = errors.New("display not found")
	// ErrDisplayInactive is returned when the output exists but has no position.
	ErrDisplayInactive = errors.New("display has no active mode")
)

// A Geometry locates a named display within the combined screen space.
type Geometry interface {
	Offset(ctx context.Context, name string) (config.Offset, error)
}

// Provider is an enum used for selecting a geometry provider.
type Provider string

const (
	ProviderXrandr = "xrandr"
	ProviderRandR  = "randr"
)

// GetGeometryProvider returns the provider p talking to the given X display.
// An empty xDisplay means the DISPLAY environment variable.
func GetGeometryProvider(p Provider, xDisplay string) (Geometry, error) {
	switch p {
	case ProviderXrandr:
		return NewXrandr(xDisplay), nil
	case ProviderRandR:
		return &RandR{XDisplay: xDisplay}, nil
	default:
		return nil, fmt.Errorf("unknown geometry provider %q", p)
	}
}
