package cli

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamrankamilli/touchfwd/pkg/config"
	"github.com/kamrankamilli/touchfwd/pkg/protocol"
)

func newSendCmd() *cobra.Command {
	var (
		host  string
		port  int
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "send EVENT...",
		Short: "Send touch events to a running server",
		Long: `Send touch events to a running server.

Events are written as kind or kind:x,y, for example:

  touchfwd send down:100,50 move:120,60 up`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evs := make([]protocol.TouchEvent, 0, len(args))
			for _, a := range args {
				ev, err := ParseEventArg(a)
				if err != nil {
					return err
				}
				evs = append(evs, ev)
			}

			addr := net.JoinHostPort(host, fmt.Sprint(port))
			c, err := net.DialTimeout("tcp", addr, 5*time.Second)
			if err != nil {
				return fmt.Errorf("connect to %s: %w", addr, err)
			}
			defer c.Close()

			for i, ev := range evs {
				if i > 0 && delay > 0 {
					time.Sleep(delay)
				}
				if err := protocol.Encode(c, ev); err != nil {
					return fmt.Errorf("send %s: %w", ev, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sent %s\n", ev)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&host, "host", "127.0.0.1", "Server host")
	f.IntVar(&port, "port", config.DefaultPort, "Server port")
	f.DurationVar(&delay, "delay", 0, "Pause between events")
	return cmd
}

// ParseEventArg parses an event written as kind or kind:x,y.
func ParseEventArg(s string) (protocol.TouchEvent, error) {
	name, coords, hasCoords := strings.Cut(s, ":")
	kind, err := protocol.ParseKind(strings.ToLower(name))
	if err != nil {
		return protocol.TouchEvent{}, err
	}
	ev := protocol.TouchEvent{Kind: kind}
	if !hasCoords {
		return ev, nil
	}
	off, err := config.ParseOffset(coords)
	if err != nil {
		return protocol.TouchEvent{}, fmt.Errorf("event %q: bad coordinates", s)
	}
	if int(int32(off.X)) != off.X || int(int32(off.Y)) != off.Y {
		return protocol.TouchEvent{}, fmt.Errorf("event %q: coordinates out of int32 range", s)
	}
	ev.X, ev.Y = int32(off.X), int32(off.Y)
	return ev, nil
}
