package state

import "github.com/tiennsloit/get-agent-sub001/internal/domain"

// SettingKey is the persistence key of the settings store
const SettingKey = "settingState"

// SettingStore holds the settings screen state
type SettingStore struct {
	*Store[domain.SettingState]
}

// NewSettingStore creates a store with no section open and no presets
func NewSettingStore() *SettingStore {
	return &SettingStore{
		Store: newStore(SettingKey, domain.SettingState{},
			domain.SettingState.Clone,
			domain.SettingState.Validate),
	}
}

// SetActiveSection replaces the open section; nil closes it
func (s *SettingStore) SetActiveSection(section *domain.SettingSection) {
	s.Update(func(cur domain.SettingState) domain.SettingState {
		cur.ActiveSection = section
		return cur
	})
}

// SetPresets replaces the preset list as given
func (s *SettingStore) SetPresets(presets []domain.PromptPreset) {
	s.Update(func(cur domain.SettingState) domain.SettingState {
		cur.Presets = presets
		return cur
	})
}
