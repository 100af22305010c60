package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess checks the run exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "expected success: %s", result.describe())
}

// AssertFailure checks the run exited non-zero and printed an error
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected failure: %s", result.describe())
	assert.NotEmpty(tb, result.Stderr, "failures explain themselves on stderr: %s", result.describe())
}

// AssertStdoutContains checks stdout holds expected
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, result.describe())
}

// AssertStdoutNotContains checks stdout lacks unexpected
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, result.describe())
}

// AssertStderrContains checks stderr holds expected
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, result.describe())
}

// AssertValidJSON decodes stdout into target, failing the test if it is not JSON
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), result.describe())
}

// AssertJSONContains checks the top-level stdout object maps key to expected.
// Numbers decode as float64 and null as nil.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var object map[string]any
	AssertValidJSON(tb, result, &object)
	assert.Equal(tb, expected, object[key], "key %q of %s", key, result.describe())
}

// StdoutLine returns stdout without its trailing newline
func StdoutLine(result CommandResult) string {
	return strings.TrimRight(result.Stdout, "\n")
}
