package cmd

import (
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/format"
)

// FormatBytesCmd formats a byte count
type FormatBytesCmd struct {
	Bytes int64 `arg:"" help:"Number of bytes"`
}

// Run executes the format-bytes command
func (f *FormatBytesCmd) Run() error {
	out, err := format.Bytes(f.Bytes)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
