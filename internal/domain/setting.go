package domain

import "fmt"

// SettingSection is a category on the settings screen
type SettingSection string

const (
	SectionAbout   SettingSection = "about"
	SectionGeneral SettingSection = "general"
	SectionModels  SettingSection = "models"
	SectionPrompts SettingSection = "prompts"
)

// SettingSections lists the sections in display order
var SettingSections = []SettingSection{SectionGeneral, SectionPrompts, SectionModels, SectionAbout}

// Valid reports whether s is a known section
func (s SettingSection) Valid() bool {
	for _, known := range SettingSections {
		if s == known {
			return true
		}
	}
	return false
}

// PromptPreset is a saved prompt the user can pick from the panel
type PromptPreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// SettingState holds the open settings section and the prompt presets.
// Presets are kept as given: no dedup, no validation.
type SettingState struct {
	ActiveSection *SettingSection `json:"activeSection"`
	Presets       []PromptPreset  `json:"presets"`
}

// Clone returns a copy that shares nothing with s
func (s SettingState) Clone() SettingState {
	out := SettingState{}
	if s.ActiveSection != nil {
		section := *s.ActiveSection
		out.ActiveSection = &section
	}
	if s.Presets != nil {
		out.Presets = append([]PromptPreset(nil), s.Presets...)
	}
	return out
}

// Validate rejects unknown sections
func (s SettingState) Validate() error {
	if s.ActiveSection != nil && !s.ActiveSection.Valid() {
		return fmt.Errorf("unknown settings section %q: %w", *s.ActiveSection, ErrInvalidInput)
	}
	return nil
}
