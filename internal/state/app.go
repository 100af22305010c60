package state

import "github.com/tiennsloit/get-agent-sub001/internal/domain"

// AppKey is the persistence key of the app store
const AppKey = "appState"

// AppStore holds the panel's navigation state
type AppStore struct {
	*Store[domain.AppState]
}

// NewAppStore creates a store starting at initial
func NewAppStore(initial domain.AppState) *AppStore {
	return &AppStore{
		Store: newStore(AppKey, initial, nil, domain.AppState.Validate),
	}
}

// Merge overwrites only the fields set in patch
func (s *AppStore) Merge(patch domain.AppStatePatch) {
	s.Update(func(cur domain.AppState) domain.AppState {
		return cur.Merge(patch)
	})
}
