package providers

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

// RandR reads display geometry directly from the X server with the RandR
// extension.
type RandR struct {
	// XDisplay is the X display to connect to. Empty means $DISPLAY.
	XDisplay string
}

func (r *RandR) Offset(ctx context.Context, name string) (config.Offset, error) {
	if err := ctx.Err(); err != nil {
		return config.Offset{}, err
	}
	X, err := xgb.NewConnDisplay(r.XDisplay)
	if err != nil {
		return config.Offset{}, fmt.Errorf("connect to X display %q: %w", r.XDisplay, err)
	}
	defer X.Close()

	if err := randr.Init(X); err != nil {
		return config.Offset{}, fmt.Errorf("randr extension: %w", err)
	}
	root := xproto.Setup(X).DefaultScreen(X).Root
	res, err := randr.GetScreenResourcesCurrent(X, root).Reply()
	if err != nil {
		return config.Offset{}, fmt.Errorf("screen resources: %w", err)
	}

	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(X, output, res.ConfigTimestamp).Reply()
		if err != nil {
			return config.Offset{}, fmt.Errorf("output info: %w", err)
		}
		if string(info.Name) != name {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			return config.Offset{}, fmt.Errorf("%w: %s", ErrDisplayInactive, name)
		}
		crtc, err := randr.GetCrtcInfo(X, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			return config.Offset{}, fmt.Errorf("crtc info: %w", err)
		}
		return config.Offset{X: int(crtc.X), Y: int(crtc.Y)}, nil
	}
	return config.Offset{}, fmt.Errorf("%w: %s", ErrDisplayNotFound, name)
}
