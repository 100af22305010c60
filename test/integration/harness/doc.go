// Package harness provides utilities for integration testing the panelbridge CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PANELBRIDGE_HOME: Isolated per test (temp directory)
//   - PANELBRIDGE_DEBUG: Disabled to reduce noise
//   - PANELBRIDGE_SESSION: Cleared so the --session default applies
package harness
