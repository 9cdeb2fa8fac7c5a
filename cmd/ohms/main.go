package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-ohms/ohms"
	"github.com/valerio/go-ohms/ohms/backend"
	"github.com/valerio/go-ohms/ohms/backend/headless"
	"github.com/valerio/go-ohms/ohms/backend/terminal"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/settings"
	"github.com/valerio/go-ohms/ohms/timing"
)

const title = "Ohms Now!"

func main() {
	app := cli.NewApp()
	app.Name = "ohms"
	app.Description = "Resistor and capacitor colour code decoder"
	app.Usage = "ohms [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "settings",
			Usage: "Path to the settings file (default: user config directory)",
		},
		cli.StringFlag{
			Name:  "component",
			Usage: "Start on this component (resistor or capacitor) instead of the saved one",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Replay a gesture script without a terminal UI",
		},
		cli.StringFlag{
			Name:  "script",
			Usage: "YAML gesture script to replay in headless mode",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory for snapshots: every headless step, or F12 in the terminal UI",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode resistor bands given as colour names",
			ArgsUsage: "<colour> <colour> <colour> [colour...]",
			Action: func(c *cli.Context) error {
				return runDecode(c.App.Writer, c.Args())
			},
		},
		{
			Name:      "farads",
			Usage:     "Decode a printed three digit capacitor code",
			ArgsUsage: "<code>",
			Action: func(c *cli.Context) error {
				return runFarads(c.App.Writer, c.Args().First())
			},
		},
	}
	app.Action = runInteractive

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running ohms", "error", err)
		os.Exit(1)
	}
}

func runInteractive(c *cli.Context) error {
	headlessMode := c.Bool("headless")
	if headlessMode {
		// Set up debug logging for headless mode
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	store, err := openStore(c.String("settings"), headlessMode)
	if err != nil {
		return err
	}

	app, err := ohms.New(store)
	if err != nil {
		return err
	}
	if name := c.String("component"); name != "" {
		kind, ok := component.ParseKind(name)
		if !ok {
			return fmt.Errorf("unknown component %q", name)
		}
		app.SetKind(kind)
	}

	config := backend.BackendConfig{Title: title}

	if headlessMode {
		scriptPath := c.String("script")
		if scriptPath == "" {
			cli.ShowAppHelp(c)
			return errors.New("headless mode requires --script")
		}
		steps, err := headless.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		snapshotConfig, err := headless.CreateSnapshotConfig(c.String("snapshot-dir"), scriptPath)
		if err != nil {
			return err
		}
		return ohms.Run(app, headless.New(steps, snapshotConfig), config, timing.NewNoOpLimiter())
	}

	term := terminal.New()
	term.SetSnapshotDir(c.String("snapshot-dir"))

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()
	return ohms.Run(app, term, config, limiter)
}

// openStore picks the settings file. Headless runs only persist when a
// file is given explicitly.
func openStore(path string, headlessMode bool) (*settings.Store, error) {
	if path != "" {
		return settings.NewStore(path), nil
	}
	if headlessMode {
		return nil, nil
	}
	path, err := settings.DefaultPath()
	if err != nil {
		return nil, err
	}
	return settings.NewStore(path), nil
}
