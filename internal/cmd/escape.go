package cmd

import (
	"fmt"
	"strings"

	"github.com/tiennsloit/get-agent-sub001/internal/sanitize"
)

// EscapeCmd HTML-escapes text for the panel
type EscapeCmd struct {
	Text []string `arg:"" optional:"" help:"Text to escape (joined with spaces); omitted prints an empty line"`
}

// Run executes the escape command
func (e *EscapeCmd) Run() error {
	var text *string
	if len(e.Text) > 0 {
		joined := strings.Join(e.Text, " ")
		text = &joined
	}
	fmt.Println(sanitize.EscapeOptional(text))
	return nil
}
