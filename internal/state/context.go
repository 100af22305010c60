package state

import "github.com/tiennsloit/get-agent-sub001/internal/domain"

// ContextKey is the persistence key of the context store
const ContextKey = "contextState"

// ContextStore holds the active file and workspace tree reported by the editor
type ContextStore struct {
	*Store[domain.ContextState]
}

// NewContextStore creates a store with nothing reported yet. Restore only
// requires the data to decode: the setters accept any reported value, so
// anything they stored must load back.
func NewContextStore() *ContextStore {
	return &ContextStore{
		Store: newStore(ContextKey, domain.ContextState{},
			domain.ContextState.Clone, nil),
	}
}

// SetActiveFile replaces the active-file snapshot. The snapshot is stored
// as given; callers supply a self-consistent value.
func (s *ContextStore) SetActiveFile(info domain.ActiveFileInfo) {
	s.Update(func(cur domain.ContextState) domain.ContextState {
		cur.ActiveFile = &info
		return cur
	})
}

// SetCodeStructure replaces the workspace tree
func (s *ContextStore) SetCodeStructure(root domain.CodeStructure) {
	s.Update(func(cur domain.ContextState) domain.ContextState {
		cur.CodeStructure = &root
		return cur
	})
}

// ActiveFile returns a copy of the active file, or nil before the first report
func (s *ContextStore) ActiveFile() *domain.ActiveFileInfo {
	return s.Get().ActiveFile
}

// CodeStructure returns a copy of the workspace tree, or nil before the first scan
func (s *ContextStore) CodeStructure() *domain.CodeStructure {
	return s.Get().CodeStructure
}
