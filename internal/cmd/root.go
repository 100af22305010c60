package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tiennsloit/get-agent-sub001/internal/config"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Ephemeral   bool             `help:"Keep panel state in memory only (nothing is read from or written to disk)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	SessionID   string           `name:"session" help:"Panel session id state is restored from and saved under" env:"PANELBRIDGE_SESSION" default:"default"`

	App         AppCmd         `cmd:"" help:"Show or change the panel navigation state"`
	Context     ContextCmd     `cmd:"" help:"Show or change the editor context (active file, workspace tree)"`
	Escape      EscapeCmd      `cmd:"" help:"Escape text for display in the panel"`
	FormatBytes FormatBytesCmd `cmd:"" help:"Format a byte count as bytes, Mb or Gb"`
	Locate      LocateCmd      `cmd:"" help:"Find the first line matching a code snippet"`
	Payload     PayloadCmd     `cmd:"" help:"Build the assistant request payload from the editor context"`
	Scan        ScanCmd        `cmd:"" help:"Scan a workspace directory into the code structure"`
	Session     SessionCmd     `cmd:"" help:"Manage panel sessions"`
	Settings    SettingsCmd    `cmd:"" help:"Show or change the settings screen state"`
	VersionCmd  VersionCmd     `cmd:"" name:"version" help:"Show version information"`

	// Internal fields (not flags)
	container   *Container       `kong:"-"`
	settings    *config.Settings `kong:"-"`
	versionInfo string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersionInfo sets the text printed by the version command
func (c *CLI) SetVersionInfo(info string) {
	c.versionInfo = info
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PANELBRIDGE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PANELBRIDGE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported after initialization so the gorm logger picks up debug mode
	// and a host process spawning us can share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PANELBRIDGE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PANELBRIDGE_DEBUG_FILE", logFilePath)
		}
	}

	return nil
}

// Container returns the session container, creating it on first use.
// Commands that never touch panel state do not call it, so they run
// without opening the session store.
func (c *CLI) Container() (*Container, error) {
	if c.container != nil {
		return c.container, nil
	}

	container, err := NewContainer(context.Background(), ContainerOptions{
		Ephemeral: c.Ephemeral,
		SessionID: c.SessionID,
		Settings:  c.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	c.container = container
	return container, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.container != nil {
		return c.container.Close()
	}
	return nil
}
