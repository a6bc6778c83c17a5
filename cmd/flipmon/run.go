// Package main toggles the secondary display between landscape and portrait.
package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/frudas24/flipmon/internal/config"
	"github.com/frudas24/flipmon/internal/display"
	"github.com/frudas24/flipmon/internal/monitor"
	"github.com/frudas24/flipmon/internal/position"
	"github.com/frudas24/flipmon/internal/toggle"
)

// newAPI is swapped in tests.
var newAPI = display.NewAPI

// listMonitors is swapped in tests.
var listMonitors = monitor.ListMonitors

// options holds command-line overrides.
type options struct {
	dataDir     string
	debug       bool
	dryRun      bool
	deviceIndex int
}

// newRootCmd builds the flipmon command tree.
func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "flipmon",
		Short:         "Toggle the secondary display between 0° and 270°",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runToggle(cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding flipmon.yaml and .env (default: DATA_DIR or .)")
	flags.BoolVar(&opts.debug, "debug", false, "enable verbose debug logging")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "test the new mode without applying it")
	flags.IntVar(&opts.deviceIndex, "device-index", toggle.DefaultDeviceIndex, "display device enumeration index")

	cmd.AddCommand(newStatusCmd(&opts))
	return cmd
}

// loadConfig reads config and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if flags.Changed("device-index") {
		if opts.deviceIndex < 0 {
			return config.Config{}, fmt.Errorf("--device-index must be >= 0")
		}
		cfg.DeviceIndex = opts.deviceIndex
	}
	toggle.SetDebugLogging(cfg.Debug)
	if cfg.Debug {
		log.Printf("debug: enabled (store %s, device %d)", cfg.StoreDir, cfg.DeviceIndex)
	}
	return cfg, nil
}

// newToggler wires the display API and position store from config.
func newToggler(cfg config.Config) (*toggle.Toggler, error) {
	api, err := newAPI()
	if err != nil {
		return nil, err
	}
	policy, err := toggle.ParsePolicy(cfg.MalformedPolicy)
	if err != nil {
		return nil, err
	}
	tg := toggle.New(api, position.NewStore(cfg.StoreDir))
	tg.DeviceIndex = cfg.DeviceIndex
	tg.MalformedPolicy = policy
	if cfg.DryRun {
		tg.Flags = display.ApplyFlags{Test: true}
	}
	return tg, nil
}

// runToggle performs one toggle and prints its outcome.
func runToggle(cfg config.Config, out io.Writer) error {
	tg, err := newToggler(cfg)
	if err != nil {
		return err
	}
	rep, err := tg.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, toggle.Message(rep.Result))

	if rep.Result == display.ResultSuccessful && !cfg.DryRun {
		logLanding(rep)
	}
	return nil
}

// logLanding reports where the rotated display ended up on the desktop.
func logLanding(rep toggle.Report) {
	monitors, err := listMonitors()
	if err != nil {
		log.Printf("layout: %v", err)
		return
	}
	source := "default position"
	if rep.Restored {
		source = "stored position"
	}
	log.Printf("layout: %s %s -> %s (%s)", rep.Device.Name, rep.Previous.Orientation, rep.Next.Orientation, source)
	if m, ok := monitor.FindAt(monitors, rep.Next.Position); ok {
		log.Printf("layout: %s now %s %s", rep.Device.Name, m, shape(m.Portrait()))
		return
	}
	log.Printf("layout: %s moved by the OS from requested (%d,%d)", rep.Device.Name, rep.Next.Position.X, rep.Next.Position.Y)
}

// shape names the layout of a rectangle.
func shape(portrait bool) string {
	if portrait {
		return "portrait"
	}
	return "landscape"
}
