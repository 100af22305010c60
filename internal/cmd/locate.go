package cmd

import (
	"fmt"
	"os"

	"github.com/tiennsloit/get-agent-sub001/internal/services"
	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// LocateCmd finds a snippet in the active file or in a file on disk
type LocateCmd struct {
	File    string `help:"Search this file instead of the session's active file" type:"existingfile"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Literal bool   `help:"Match the snippet verbatim instead of as a regular expression" short:"l"`
	Pattern string `arg:"" help:"Regular expression (or literal snippet with --literal)"`
}

// Run executes the locate command
func (l *LocateCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	var result services.JumpResult
	if l.File != "" {
		data, readErr := os.ReadFile(l.File)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", l.File, readErr)
		}
		result, err = container.JumpService.JumpInDocument(l.File, string(data), l.Pattern, l.Literal)
	} else {
		result, err = container.JumpService.JumpToCode(l.Pattern, l.Literal)
	}
	if err != nil {
		return err
	}

	if l.Format == "json" {
		return printJSON(map[string]any{
			"file":  result.FileName,
			"found": result.Found,
			"line":  result.Line,
		})
	}

	if !result.Found {
		fmt.Println(theme.ErrorStyle.Render("Not found") + " " + theme.MutedStyle.Render(result.FileName))
		return nil
	}
	fmt.Printf("%s:%d\n", result.FileName, result.Line)
	return nil
}
