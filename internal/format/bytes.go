// Package format renders numbers for display in the panel.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

// Bytes formats a byte count as "N bytes", "X.XX Mb" or "X.XX Gb".
// A value equal to a threshold uses that threshold's unit.
func Bytes(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("byte count %d is negative: %w", n, domain.ErrInvalidInput)
	}

	switch {
	case n >= humanize.GiByte:
		return fmt.Sprintf("%.2f Gb", float64(n)/humanize.GiByte), nil
	case n >= humanize.MiByte:
		return fmt.Sprintf("%.2f Mb", float64(n)/humanize.MiByte), nil
	default:
		return fmt.Sprintf("%d bytes", n), nil
	}
}
