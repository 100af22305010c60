package services

import (
	"context"
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

// ContextService applies editor events to the context store
type ContextService struct {
	reader  ports.DocumentReader
	scanner ports.WorkspaceScanner
	store   *state.ContextStore
}

// NewContextService creates a new ContextService
func NewContextService(store *state.ContextStore, reader ports.DocumentReader, scanner ports.WorkspaceScanner) *ContextService {
	return &ContextService{
		reader:  reader,
		scanner: scanner,
		store:   store,
	}
}

// UpdateActiveFile installs a snapshot pushed by the editor
func (s *ContextService) UpdateActiveFile(info domain.ActiveFileInfo) {
	logging.Logger.Debug("Active file changed",
		"file", info.FileName,
		"language", info.LanguageID,
		"line", info.Cursor.Line,
		"character", info.Cursor.Character,
		"selection_length", len(info.Selection.Text))
	s.store.SetActiveFile(info)
}

// OpenFile reads path from disk and installs it as the active file
func (s *ContextService) OpenFile(ctx context.Context, path string, cursor domain.Position, selection domain.Selection) (*domain.ActiveFileInfo, error) {
	info, err := s.reader.ReadActiveFile(ctx, path, cursor, selection)
	if err != nil {
		logging.Logger.Error("Failed to read active file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read active file: %w", err)
	}
	s.UpdateActiveFile(*info)
	return info, nil
}

// RescanWorkspace scans root and replaces the code structure in one step.
// On failure the previous tree is kept.
func (s *ContextService) RescanWorkspace(ctx context.Context, root string) (*domain.CodeStructure, error) {
	logging.Logger.Info("Scanning workspace", "root", root)

	tree, err := s.scanner.Scan(ctx, root)
	if err != nil {
		logging.Logger.Error("Workspace scan failed", "root", root, "error", err)
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}
	if err := tree.Validate(); err != nil {
		logging.Logger.Error("Workspace scan returned a malformed tree", "root", root, "error", err)
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}
	s.store.SetCodeStructure(*tree)

	logging.Logger.Info("Workspace scanned", "root", root, "files", tree.CountFiles())
	return tree, nil
}

// Snapshot returns the current context state
func (s *ContextService) Snapshot() domain.ContextState {
	return s.store.Get()
}
