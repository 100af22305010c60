package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

// Settings represents the structure of $PANELBRIDGE_HOME/settings.json.
// Pointer fields distinguish "unset" from the zero value.
type Settings struct {
	Debug               *bool       `json:"debug,omitempty"`
	DefaultChatMode     string      `json:"default_chat_mode,omitempty"`
	MaxLogFiles         *int        `json:"max_log_files,omitempty"`
	ScanExclude         StringArray `json:"scan_exclude,omitempty"`
	ScanIncludeHidden   *bool       `json:"scan_include_hidden,omitempty"`
	ScanMaxDepth        *int        `json:"scan_max_depth,omitempty"`
	StripCarriageReturn *bool       `json:"strip_carriage_return,omitempty"`
}

// Validate checks values that have a closed set of options
func (s *Settings) Validate() error {
	if s.DefaultChatMode != "" && !domain.ChatMode(s.DefaultChatMode).Valid() {
		return fmt.Errorf("invalid default_chat_mode %q (expected normal or flow)", s.DefaultChatMode)
	}
	if s.ScanMaxDepth != nil && *s.ScanMaxDepth < 0 {
		return fmt.Errorf("invalid scan_max_depth %d (must be >= 0)", *s.ScanMaxDepth)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("invalid max_log_files %d (must be >= 0)", *s.MaxLogFiles)
	}
	return nil
}

// InitialAppState is the app state a new panel session starts with
func (s *Settings) InitialAppState() domain.AppState {
	initial := domain.DefaultAppState()
	if s != nil && s.DefaultChatMode != "" {
		initial.ChatMode = domain.ChatMode(s.DefaultChatMode)
		if initial.ChatMode == domain.ChatModeFlow {
			initial.Screen = domain.ScreenFlowChat
		}
	}
	return initial
}

// With returns a copy of s with the settings.json option key set to value.
// value is read as JSON when it parses (true, 8, ["a"]) and as a plain
// string otherwise. An empty value removes the option.
func (s *Settings) With(key, value string) (*Settings, error) {
	if _, ok := GetSettingsExample()[key]; !ok {
		return nil, fmt.Errorf("unknown setting %q", key)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if value == "" {
		delete(fields, key)
	} else {
		raw := json.RawMessage(value)
		if !json.Valid(raw) {
			raw, _ = json.Marshal(value)
		}
		fields[key] = raw
	}

	if data, err = json.Marshal(fields); err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	var updated Settings
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $PANELBRIDGE_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PANELBRIDGE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
