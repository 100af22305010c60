package cmd

import (
	"context"
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// ScanCmd scans a directory into the session's code structure
type ScanCmd struct {
	Format string `help:"Output format: tree or json" enum:"tree,json" default:"tree"`
	Root   string `arg:"" optional:"" help:"Workspace root" default:"." type:"existingdir"`
}

// Run executes the scan command
func (s *ScanCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	tree, err := container.ContextService.RescanWorkspace(context.Background(), s.Root)
	if err != nil {
		return err
	}
	if err := container.SaveError(); err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(tree)
	}
	fmt.Println(theme.RenderTree(*tree))
	fmt.Println(theme.MutedStyle.Render(fmt.Sprintf("%d files", tree.CountFiles())))
	return nil
}
