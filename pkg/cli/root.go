// Package cli contains the touchfwd command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kamrankamilli/touchfwd/pkg/config"
)

// RootCmd is the touchfwd root command.
var RootCmd = &cobra.Command{
	Use:           "touchfwd",
	Short:         "Forward remote touch events to the local pointer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(newServeCmd(), newSendCmd(), newGeometryCmd())
}
