package cmd

import (
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// AppCmd shows or changes the navigation state
type AppCmd struct {
	Merge AppMergeCmd `cmd:"" help:"Change the screen and/or chat mode, leaving the other untouched"`
	Show  AppShowCmd  `cmd:"" help:"Show the current screen and chat mode" default:"1"`
}

// AppShowCmd displays the app state
type AppShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (a *AppShowCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	current := container.AppStore.Get()
	if a.Format == "json" {
		return printJSON(current)
	}
	fmt.Println(theme.KeyValue("Screen", string(current.Screen)))
	fmt.Println(theme.KeyValue("Chat mode", string(current.ChatMode)))
	return nil
}

// AppMergeCmd applies a partial update
type AppMergeCmd struct {
	ChatMode string `help:"Chat mode: normal or flow"`
	Screen   string `help:"Screen: chat, history, settings, flow-chat or flow-history"`
}

// Run executes the merge command
func (a *AppMergeCmd) Run(cli *CLI) error {
	patch, err := a.patch()
	if err != nil {
		return err
	}

	container, err := cli.Container()
	if err != nil {
		return err
	}

	container.AppStore.Merge(patch)
	if err := container.SaveError(); err != nil {
		return err
	}

	current := container.AppStore.Get()
	fmt.Printf("Screen: %s, chat mode: %s\n", current.Screen, current.ChatMode)
	return nil
}

func (a *AppMergeCmd) patch() (domain.AppStatePatch, error) {
	var patch domain.AppStatePatch
	if a.ChatMode != "" {
		mode := domain.ChatMode(a.ChatMode)
		if !mode.Valid() {
			return patch, fmt.Errorf("unknown chat mode %q: %w", a.ChatMode, domain.ErrInvalidInput)
		}
		patch.ChatMode = &mode
	}
	if a.Screen != "" {
		screen := domain.Screen(a.Screen)
		if !screen.Valid() {
			return patch, fmt.Errorf("unknown screen %q: %w", a.Screen, domain.ErrInvalidInput)
		}
		patch.Screen = &screen
	}
	return patch, nil
}
