package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/display"
	"github.com/kamrankamilli/touchfwd/pkg/display/providers"
	"github.com/kamrankamilli/touchfwd/pkg/input"
	"github.com/kamrankamilli/touchfwd/pkg/internal/log"
	"github.com/kamrankamilli/touchfwd/pkg/server"
)

const geometryTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	flags := config.NewServe()
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Listen for touch events and inject them on the local display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildServeConfig(cmd.Flags(), flags, configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer log.Sync()
			return runServe(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with serve settings; flags override it")
	f.StringVar(&flags.Display, "display", flags.Display, "Name of the virtual display (e.g. VIRTUAL1)")
	f.StringVar(&flags.XDisplay, "x-display", flags.XDisplay, "X display to inject into (defaults to $DISPLAY)")
	f.StringVar(&flags.Bind, "bind", flags.Bind, "Address to listen on")
	f.IntVar(&flags.Port, "port", flags.Port, "Port to listen on for input events")
	f.StringVar(&flags.Offset, "offset", flags.Offset, "Display offset in format \"x,y\"; skips the geometry lookup")
	f.StringVar(&flags.GeometryProvider, "geometry-provider", flags.GeometryProvider, "Geometry lookup to use (xrandr, randr)")
	f.StringVar(&flags.Injector, "injector", flags.Injector, "Input injector to use (robotgo, xdotool)")
	f.IntVar(&flags.ReadChunk, "read-chunk", flags.ReadChunk, "Maximum bytes per socket read")
	f.IntVar(&flags.MaxBuffer, "max-buffer", flags.MaxBuffer, "Maximum buffered bytes per connection")
	f.IntVar(&flags.MaxSessions, "max-sessions", flags.MaxSessions, "Maximum concurrent connections (0 for unlimited)")
	f.DurationVar(&flags.IdleTimeout, "idle-timeout", flags.IdleTimeout, "Close connections idle this long (0 to disable)")
	return cmd
}

// buildServeConfig layers defaults, the optional config file and explicitly
// set flags, in that order.
func buildServeConfig(fs *pflag.FlagSet, flags *config.Serve, configPath string) (*config.Serve, error) {
	cfg := config.NewServe()
	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = flags.Display
		case "x-display":
			cfg.XDisplay = flags.XDisplay
		case "bind":
			cfg.Bind = flags.Bind
		case "port":
			cfg.Port = flags.Port
		case "offset":
			cfg.Offset = flags.Offset
		case "geometry-provider":
			cfg.GeometryProvider = flags.GeometryProvider
		case "injector":
			cfg.Injector = flags.Injector
		case "read-chunk":
			cfg.ReadChunk = flags.ReadChunk
		case "max-buffer":
			cfg.MaxBuffer = flags.MaxBuffer
		case "max-sessions":
			cfg.MaxSessions = flags.MaxSessions
		case "idle-timeout":
			cfg.IdleTimeout = flags.IdleTimeout
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg *config.Serve) error {
	if cfg.XDisplay != "" {
		// robotgo opens the display named by $DISPLAY.
		if err := os.Setenv("DISPLAY", cfg.XDisplay); err != nil {
			return err
		}
	}

	inj, err := input.GetInjector(input.Type(cfg.Injector), cfg.XDisplay)
	if err != nil {
		return err
	}

	explicit, err := cfg.ExplicitOffset()
	if err != nil {
		return err
	}
	opts := &display.Opts{Name: cfg.Display, Explicit: explicit}
	if explicit == nil {
		geo, err := providers.GetGeometryProvider(providers.Provider(cfg.GeometryProvider), cfg.XDisplay)
		if err != nil {
			return err
		}
		opts.Provider = geo
	}
	lookupCtx, cancel := context.WithTimeout(ctx, geometryTimeout)
	offset := display.ResolveOffset(lookupCtx, opts)
	cancel()

	srv := server.New(&server.Opts{
		Addr:        cfg.Addr(),
		Handler:     input.NewMapper(inj, offset),
		ReadChunk:   cfg.ReadChunk,
		MaxBuffer:   cfg.MaxBuffer,
		MaxSessions: cfg.MaxSessions,
		IdleTimeout: cfg.IdleTimeout,
	})
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Errorf("Server error: %s", err)
		return err
	}
	log.Info("Stopping input handler")
	return nil
}
