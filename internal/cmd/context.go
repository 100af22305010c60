package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// ContextCmd shows or changes the editor context
type ContextCmd struct {
	SetFile ContextSetFileCmd `cmd:"" help:"Read a file from disk and make it the active file"`
	Show    ContextShowCmd    `cmd:"" help:"Show the active file and workspace tree" default:"1"`
}

// ContextSetFileCmd opens a file as the active file
type ContextSetFileCmd struct {
	Cursor    string `help:"Cursor position as line:character (zero-based)" default:"0:0"`
	Path      string `arg:"" help:"File to open" type:"existingfile"`
	Selection string `help:"Selection as line:character-line:character (zero-based)"`
}

// Run executes the set-file command
func (c *ContextSetFileCmd) Run(cli *CLI) error {
	cursor, err := parsePosition(c.Cursor)
	if err != nil {
		return err
	}
	selection, err := parseSelection(c.Selection)
	if err != nil {
		return err
	}

	container, err := cli.Container()
	if err != nil {
		return err
	}

	info, err := container.ContextService.OpenFile(context.Background(), c.Path, cursor, selection)
	if err != nil {
		return err
	}
	if err := container.SaveError(); err != nil {
		return err
	}

	fmt.Printf("Active file: %s (%s, %d lines)\n", info.FileName, info.LanguageID, info.LineCount)
	return nil
}

// ContextShowCmd displays the context state
type ContextShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (c *ContextShowCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	snapshot := container.ContextService.Snapshot()

	if c.Format == "json" {
		return printJSON(snapshot)
	}

	fmt.Println(theme.TitleStyle.Render("Active file"))
	printActiveFile(snapshot.ActiveFile)
	fmt.Println()
	fmt.Println(theme.TitleStyle.Render("Workspace"))
	if snapshot.CodeStructure == nil {
		fmt.Println(theme.MutedStyle.Render("Not scanned"))
		return nil
	}
	fmt.Println(theme.RenderTree(*snapshot.CodeStructure))
	return nil
}

func printActiveFile(info *domain.ActiveFileInfo) {
	if info == nil {
		fmt.Println(theme.MutedStyle.Render("None"))
		return
	}
	fmt.Println(theme.KeyValue("File", info.FileName))
	fmt.Println(theme.KeyValue("Language", info.LanguageID))
	fmt.Println(theme.KeyValue("Lines", strconv.Itoa(info.LineCount)))
	fmt.Println(theme.KeyValue("Cursor", fmt.Sprintf("%d:%d", info.Cursor.Line, info.Cursor.Character)))
	if !info.Selection.Empty() {
		fmt.Println(theme.KeyValue("Selection", fmt.Sprintf("%d:%d-%d:%d",
			info.Selection.Start.Line, info.Selection.Start.Character,
			info.Selection.End.Line, info.Selection.End.Character)))
	}
}
