package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/test/integration/harness"
)

func TestAppStatePersistsPerSession(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "app", "merge", "--screen", "settings")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "settings")
	harness.AssertJSONContains(t, result, "chatMode", "normal")

	result = harness.RunCommand(t, env, "app", "merge", "--chat-mode", "flow")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "settings")
	harness.AssertJSONContains(t, result, "chatMode", "flow")

	result = harness.RunInSession(t, env, "other", "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")

	result = harness.RunCommand(t, env, "--session", "other", "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")

	assert.FileExists(t, env.DBPath())
}

func TestSessionFromEnvironment(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunInSession(t, env, "panel-2", "app", "merge", "--screen", "history")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")

	env.SetEnv("PANELBRIDGE_SESSION", "panel-2")
	result = harness.RunCommand(t, env, "session", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "session", "panel-2")

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "history")

	result = harness.RunCommand(t, env, "--session", "default", "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")
}

func TestAppMergeRejectsUnknownScreen(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "app", "merge", "--screen", "dashboard")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown screen")
}

func TestEphemeralLeavesNoState(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--ephemeral", "app", "merge", "--screen", "history")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")
}

func TestDefaultChatModeSetting(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"default_chat_mode": "flow"}`)

	result := harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "chatMode", "flow")
	harness.AssertJSONContains(t, result, "screen", "flow-chat")
}

func TestSettingsSet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "set", "default_chat_mode", "flow")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set 'default_chat_mode' to: flow")
	assert.FileExists(t, env.SettingsPath())

	result = harness.RunInSession(t, env, "fresh", "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "chatMode", "flow")

	result = harness.RunCommand(t, env, "settings", "set", "scan_max_depth", "--", "-1")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "scan_max_depth")

	result = harness.RunCommand(t, env, "settings", "set", "default_chat_mode")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Removed 'default_chat_mode'")

	result = harness.RunInSession(t, env, "fresher", "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "chatMode", "normal")
}

func TestSettingsState(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "section", "models")
	harness.AssertSuccess(t, result)

	presets := env.WriteFile(t.TempDir(), "presets.json",
		`[{"id":"1","name":"Review","prompt":"Review this"},{"id":"1","name":"Review","prompt":"Review this"}]`)
	result = harness.RunCommand(t, env, "settings", "presets", presets)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Loaded 2 presets")

	var state struct {
		ActiveSection *string `json:"activeSection"`
		Presets       []struct {
			ID string `json:"id"`
		} `json:"presets"`
	}
	result = harness.RunCommand(t, env, "settings", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertValidJSON(t, result, &state)
	require.NotNil(t, state.ActiveSection)
	assert.Equal(t, "models", *state.ActiveSection)
	assert.Len(t, state.Presets, 2, "duplicates are kept")

	result = harness.RunCommand(t, env, "settings", "section")
	harness.AssertSuccess(t, result)
	result = harness.RunCommand(t, env, "settings", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "activeSection", nil)

	result = harness.RunCommand(t, env, "settings", "section", "billing")
	harness.AssertFailure(t, result)
}

func TestContextAndPayload(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	workspace := t.TempDir()
	main := env.WriteFile(workspace, "cmd/main.go", "package main\n\nfunc main() {}\n")
	env.WriteFile(workspace, "README.md", "# demo\n")
	env.WriteFile(workspace, "node_modules/lib/index.js", "module.exports = {}\n")

	result := harness.RunCommand(t, env, "scan", workspace, "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, `"name": "main.go"`)
	harness.AssertStdoutNotContains(t, result, "node_modules")

	result = harness.RunCommand(t, env, "context", "set-file", main, "--cursor", "2:5", "--selection", "0:0-0:7")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "go, 4 lines")

	var snapshot struct {
		ActiveFile struct {
			BaseName   string `json:"baseName"`
			FileName   string `json:"fileName"`
			LanguageID string `json:"languageId"`
			Selection  struct {
				Text string `json:"text"`
			} `json:"selection"`
		} `json:"activeFile"`
		CodeStructure struct {
			Type     string `json:"type"`
			Children []any  `json:"children"`
		} `json:"codeStructure"`
	}
	result = harness.RunCommand(t, env, "context", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertValidJSON(t, result, &snapshot)
	assert.Equal(t, "main.go", snapshot.ActiveFile.BaseName)
	assert.Equal(t, "go", snapshot.ActiveFile.LanguageID)
	assert.Equal(t, "package", snapshot.ActiveFile.Selection.Text)
	assert.Equal(t, "directory", snapshot.CodeStructure.Type)
	assert.Len(t, snapshot.CodeStructure.Children, 2)

	result = harness.RunCommand(t, env, "locate", "--format", "json", `func\s+main`)
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "line", float64(2))

	var payload struct {
		Files []struct {
			Filename string `json:"filename"`
		} `json:"files"`
		Messages []struct {
			Content string `json:"content"`
			Role    string `json:"role"`
		} `json:"messages"`
		TargetCode string `json:"targetCode"`
	}
	result = harness.RunCommand(t, env, "payload", "explain", "this")
	harness.AssertSuccess(t, result)
	harness.AssertValidJSON(t, result, &payload)
	require.Len(t, payload.Files, 1)
	assert.Equal(t, filepath.Base(main), filepath.Base(payload.Files[0].Filename))
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, "explain this", payload.Messages[0].Content)
	assert.Equal(t, "user", payload.Messages[0].Role)
	assert.Equal(t, "package", payload.TargetCode)

	result = harness.RunCommand(t, env, "payload", "--no-active", "hi")
	harness.AssertSuccess(t, result)
	harness.AssertValidJSON(t, result, &payload)
	assert.Empty(t, payload.Files)
}

func TestSessionReset(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "app", "merge", "--screen", "history")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "session", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "appState")

	result = harness.RunCommand(t, env, "session", "reset")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Reset appState")

	result = harness.RunCommand(t, env, "app", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "screen", "chat")
}

func TestSessionNew(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	first := harness.RunCommand(t, env, "--ephemeral", "session", "new")
	second := harness.RunCommand(t, env, "--ephemeral", "session", "new")
	harness.AssertSuccess(t, first)
	harness.AssertSuccess(t, second)
	assert.Len(t, harness.StdoutLine(first), 36)
	assert.NotEqual(t, first.Stdout, second.Stdout)
}
