package cmd

import (
	"context"
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/services"
	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// SessionCmd manages panel sessions
type SessionCmd struct {
	New   SessionNewCmd   `cmd:"" help:"Print a new session id"`
	Reset SessionResetCmd `cmd:"" help:"Delete stored state of the current session"`
	Show  SessionShowCmd  `cmd:"" help:"Show the current session and its stored keys" default:"1"`
}

// SessionNewCmd prints a fresh session id
type SessionNewCmd struct{}

// Run executes the new command
func (s *SessionNewCmd) Run() error {
	fmt.Println(services.NewSessionID())
	return nil
}

// SessionShowCmd shows what is stored for the current session
type SessionShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SessionShowCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	keys, err := container.sessionStore.Keys(context.Background(), cli.SessionID)
	if err != nil {
		return fmt.Errorf("failed to list stored state: %w", err)
	}

	if s.Format == "json" {
		return printJSON(map[string]any{
			"session": cli.SessionID,
			"keys":    keys,
		})
	}

	fmt.Println(theme.KeyValue("Session", cli.SessionID))
	if len(keys) == 0 {
		fmt.Println(theme.MutedStyle.Render("No stored state"))
		return nil
	}
	for _, key := range keys {
		fmt.Printf("  %s\n", key)
	}
	return nil
}

// SessionResetCmd deletes stored state
type SessionResetCmd struct {
	Keys []string `arg:"" optional:"" help:"State keys to delete (appState, contextState, settingState); all when omitted"`
}

// Run executes the reset command
func (s *SessionResetCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	ctx := context.Background()
	keys := s.Keys
	if len(keys) == 0 {
		stored, err := container.sessionStore.Keys(ctx, cli.SessionID)
		if err != nil {
			return fmt.Errorf("failed to list stored state: %w", err)
		}
		keys = stored
	}

	// Stop auto-saving first so nothing is written back on exit
	container.PersistenceService.Close()
	for _, key := range keys {
		if err := container.PersistenceService.Reset(ctx, key); err != nil {
			return err
		}
		fmt.Printf("Reset %s\n", key)
	}
	return nil
}
