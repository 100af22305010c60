package ports

import (
	"context"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

// WorkspaceScanner builds a CodeStructure snapshot of a directory
type WorkspaceScanner interface {
	Scan(ctx context.Context, root string) (*domain.CodeStructure, error)
}

// DocumentReader builds an ActiveFileInfo for a file and a cursor/selection
type DocumentReader interface {
	ReadActiveFile(ctx context.Context, path string, cursor domain.Position, selection domain.Selection) (*domain.ActiveFileInfo, error)
}
