package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parsePosition parses "line:character" (zero-based)
func parsePosition(s string) (domain.Position, error) {
	line, char, ok := strings.Cut(s, ":")
	if !ok {
		return domain.Position{}, fmt.Errorf("invalid position %q (expected line:character): %w", s, domain.ErrInvalidInput)
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 0 {
		return domain.Position{}, fmt.Errorf("invalid line in %q: %w", s, domain.ErrInvalidInput)
	}
	c, err := strconv.Atoi(char)
	if err != nil || c < 0 {
		return domain.Position{}, fmt.Errorf("invalid character in %q: %w", s, domain.ErrInvalidInput)
	}
	return domain.Position{Character: c, Line: l}, nil
}

// parseSelection parses "line:character-line:character"; empty means no selection
func parseSelection(s string) (domain.Selection, error) {
	if s == "" {
		return domain.Selection{}, nil
	}
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return domain.Selection{}, fmt.Errorf("invalid selection %q (expected start-end): %w", s, domain.ErrInvalidInput)
	}
	startPos, err := parsePosition(start)
	if err != nil {
		return domain.Selection{}, err
	}
	endPos, err := parsePosition(end)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{End: endPos, Start: startPos}, nil
}
