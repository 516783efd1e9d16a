package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/display/providers"
)

func newGeometryCmd() *cobra.Command {
	var name, provider, xDisplay string
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the offset of a virtual display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return config.ErrMissingDisplay
			}
			geo, err := providers.GetGeometryProvider(providers.Provider(provider), xDisplay)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), geometryTimeout)
			defer cancel()
			off, err := geo.Offset(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), off)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "display", "", "Name of the virtual display (e.g. VIRTUAL1)")
	f.StringVar(&provider, "geometry-provider", config.DefaultGeometryProvider, "Geometry lookup to use (xrandr, randr)")
	f.StringVar(&xDisplay, "x-display", os.Getenv("DISPLAY"), "X display to query")
	return cmd
}
