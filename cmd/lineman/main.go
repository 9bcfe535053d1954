package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sokinpui/lineman/cli"
	"github.com/sokinpui/lineman/internal/ui"
	"github.com/sokinpui/lineman/lineman"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return
		}
		ui.Error("%v", err)
		os.Exit(1)
	}

	ui.SetNoColor(cfg.NoColor)
	ui.SetVerbose(cfg.Verbose)

	app, err := lineman.New(cfg)
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		os.Exit(1)
	}

	ui.Header("--- Cleaning %s ---", cfg.Path)
	summary, err := app.Execute()
	if err != nil {
		var detailed *lineman.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		ui.Error("Error: %v", err)
		os.Exit(1)
	}

	ui.PrintSummary(os.Stdout, summary)
}
