package domain

import "fmt"

// Screen is the panel's navigation target
type Screen string

const (
	ScreenChat        Screen = "chat"
	ScreenFlowChat    Screen = "flow-chat"
	ScreenFlowHistory Screen = "flow-history"
	ScreenHistory     Screen = "history"
	ScreenSettings    Screen = "settings"
)

// Screens lists every valid screen in display order
var Screens = []Screen{ScreenChat, ScreenHistory, ScreenSettings, ScreenFlowChat, ScreenFlowHistory}

// Valid reports whether s is one of the known screens
func (s Screen) Valid() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}

// ChatMode toggles between normal conversation and the workflow mode
type ChatMode string

const (
	ChatModeFlow   ChatMode = "flow"
	ChatModeNormal ChatMode = "normal"
)

// Valid reports whether m is a known chat mode
func (m ChatMode) Valid() bool {
	return m == ChatModeNormal || m == ChatModeFlow
}

// AppState is the panel's UI navigation state
type AppState struct {
	ChatMode ChatMode `json:"chatMode"`
	Screen   Screen   `json:"screen"`
}

// DefaultAppState is the state of a freshly opened panel
func DefaultAppState() AppState {
	return AppState{
		ChatMode: ChatModeNormal,
		Screen:   ScreenChat,
	}
}

// AppStatePatch is a partial AppState; nil fields are left untouched
type AppStatePatch struct {
	ChatMode *ChatMode `json:"chatMode,omitempty"`
	Screen   *Screen   `json:"screen,omitempty"`
}

// Merge returns a copy of s with only the patch's non-nil fields overwritten.
// The merge is shallow: a field is replaced as a whole, never merged into.
func (s AppState) Merge(patch AppStatePatch) AppState {
	if patch.ChatMode != nil {
		s.ChatMode = *patch.ChatMode
	}
	if patch.Screen != nil {
		s.Screen = *patch.Screen
	}
	return s
}

// Validate rejects unknown enum values
func (s AppState) Validate() error {
	if !s.Screen.Valid() {
		return fmt.Errorf("unknown screen %q: %w", s.Screen, ErrInvalidInput)
	}
	if !s.ChatMode.Valid() {
		return fmt.Errorf("unknown chat mode %q: %w", s.ChatMode, ErrInvalidInput)
	}
	return nil
}
