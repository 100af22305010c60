package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tiennsloit/get-agent-sub001/internal/cmd"
	"github.com/tiennsloit/get-agent-sub001/internal/config"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Editor-side state and helpers for the assistant chat panel"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("panelbridge %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	// Load settings from $PANELBRIDGE_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// The container is created on first use by a command that needs panel
	// state, after AfterApply has initialized logging
	var cli cmd.CLI
	cli.SetSettings(settings)
	cli.SetVersionInfo(versionInfo())
	ctx := kong.Parse(&cli,
		kong.Name("panelbridge"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	if closeErr := cli.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
