// Package main toggles the secondary display between landscape and portrait.
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/frudas24/flipmon/internal/config"
	"github.com/frudas24/flipmon/internal/display"
	"github.com/frudas24/flipmon/internal/monitor"
	"github.com/frudas24/flipmon/internal/position"
)

// newStatusCmd builds the read-only status subcommand.
func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the target display, the next toggle, and stored positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			return runStatus(cfg, cmd.OutOrStdout())
		},
	}
}

// runStatus prints what a toggle would do without changing anything.
func runStatus(cfg config.Config, out io.Writer) error {
	tg, err := newToggler(cfg)
	if err != nil {
		return err
	}
	dev, cur, next, restored, err := tg.Plan()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "device:   %s (%s) index %d\n", dev.Name, dev.String, dev.Index)
	if dev.Primary() {
		fmt.Fprintln(out, "warning:  target device hosts the primary desktop")
	}
	fmt.Fprintf(out, "current:  %s\n", formatMode(cur))
	fmt.Fprintf(out, "next:     %s", formatMode(next))
	if restored {
		fmt.Fprint(out, " (stored position)")
	}
	fmt.Fprintln(out)

	store := position.NewStore(cfg.StoreDir)
	for _, o := range display.Orientations {
		p, ok, err := store.Load(o)
		switch {
		case err != nil:
			fmt.Fprintf(out, "stored %-4s %v\n", o, err)
		case ok:
			fmt.Fprintf(out, "stored %-4s (%d,%d)\n", o, p.X, p.Y)
		default:
			fmt.Fprintf(out, "stored %-4s none (%s)\n", o, store.Path(o))
		}
	}

	monitors, err := listMonitors()
	if err != nil {
		fmt.Fprintf(out, "monitors: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "monitors: %d listed, %d reported by the system\n", len(monitors), monitor.Count())
	for _, m := range monitors {
		fmt.Fprintf(out, "  %s\n", m)
	}
	return nil
}

// formatMode renders a mode as "WxH orientation shape at (x,y)".
func formatMode(m display.Mode) string {
	return fmt.Sprintf("%dx%d %s %s at (%d,%d)", m.Width, m.Height, m.Orientation, shape(m.Orientation.Portrait()), m.Position.X, m.Position.Y)
}
