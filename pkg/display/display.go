// Package display resolves where the target virtual display sits in the
// combined screen space.
package display

import (
	"context"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/display/providers"
	"github.com/kamrankamilli/touchfwd/pkg/internal/log"
)

// Opts represents options for resolving a display offset.
type Opts struct {
	// Name is the output name of the virtual display, e.g. VIRTUAL1.
	Name string
	// Explicit, when set, is used as-is and the provider is not consulted.
	Explicit *config.Offset
	// Provider looks up the geometry when no explicit offset is given.
	Provider providers.Geometry
}

// ResolveOffset returns the offset for the display described by opts. Lookup
// failures are logged and resolve to the zero offset.
func ResolveOffset(ctx context.Context, opts *Opts) config.Offset {
	logger := log.With("component", "geometry", "display", opts.Name)
	if opts.Explicit != nil {
		logger.Infof("Using configured display offset (%s)", opts.Explicit)
		return *opts.Explicit
	}
	if opts.Provider == nil {
		logger.Error("No geometry provider configured, using offset (0,0)")
		return config.Offset{}
	}
	off, err := opts.Provider.Offset(ctx, opts.Name)
	if err != nil {
		logger.Errorf("Could not get geometry for display %s, using offset (0,0): %s", opts.Name, err)
		return config.Offset{}
	}
	logger.Infof("Virtual display offset: (%s)", off)
	return off
}
