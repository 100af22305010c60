package harness

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own PANELBRIDGE_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp PANELBRIDGE_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns the process environment for a run: the test process's
// own variables minus PANELBRIDGE_*, then PANELBRIDGE_HOME pointing at Home,
// debug logging off, and finally anything set with SetEnv.
func (e *TestEnvironment) Environ() []string {
	vars := map[string]string{
		"PANELBRIDGE_HOME":  e.Home,
		"PANELBRIDGE_DEBUG": "",
	}
	maps.Copy(vars, e.extraEnv)

	env := make([]string, 0, len(os.Environ())+len(vars))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, set := vars[key]; set || strings.HasPrefix(key, "PANELBRIDGE_") {
			continue
		}
		env = append(env, kv)
	}
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		env = append(env, key+"="+vars[key])
	}
	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes settings.json for the environment.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// WriteFile creates a file (and its parent directories) under dir.
func (e *TestEnvironment) WriteFile(dir, rel, content string) string {
	e.tb.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// SetEnv sets a variable for every later run in this environment. It
// overrides the isolation defaults, PANELBRIDGE_HOME included.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
