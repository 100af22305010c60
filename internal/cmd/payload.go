package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/services"
)

// PayloadCmd prints the request payload for the assistant backend
type PayloadCmd struct {
	Attach   []string `help:"Extra files to attach" type:"existingfile" short:"a"`
	Message  []string `arg:"" help:"Message text (joined with spaces)"`
	NoActive bool     `help:"Do not attach the active file"`
	Role     string   `help:"Role of the message author" enum:"user,system,assistant" default:"user"`
}

// Run executes the payload command
func (p *PayloadCmd) Run(cli *CLI) error {
	files := make([]domain.CodeFile, 0, len(p.Attach))
	for _, path := range p.Attach {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		data, err := os.ReadFile(absPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, domain.CodeFile{Content: string(data), Filename: absPath})
	}

	container, err := cli.Container()
	if err != nil {
		return err
	}

	input := container.ChatService.BuildGeneralChatInput(services.ChatRequest{
		Files:             files,
		IncludeActiveFile: !p.NoActive,
		Messages: []domain.ChatMessage{
			{Content: strings.Join(p.Message, " "), Role: domain.Role(p.Role)},
		},
	})
	return printJSON(input)
}
