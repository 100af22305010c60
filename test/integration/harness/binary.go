package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const runTimeout = 20 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult is what one run of the binary produced
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

// describe formats the run for assertion messages
func (r CommandResult) describe() string {
	return fmt.Sprintf("panelbridge %s (exit %d)\nstdout: %s\nstderr: %s",
		strings.Join(r.Args, " "), r.ExitCode, r.Stdout, r.Stderr)
}

// Invocation is one run of the binary inside a TestEnvironment
type Invocation struct {
	Args []string
	// Env holds KEY=VALUE pairs applied on top of the environment's own
	Env []string
	// Timeout defaults to 20s
	Timeout time.Duration
}

// BuildBinary compiles ./cmd into a temp directory. Only the first call
// builds; TestMain calls it before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		dir, err := os.MkdirTemp("", "panelbridge-integration-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(dir, "panelbridge")

		build := exec.Command("go", "build", "-o", binaryPath, "./cmd")
		build.Dir = root
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			buildErr = fmt.Errorf("go build: %w", err)
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the directory BuildBinary created
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs the binary with args in env
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return Run(tb, env, Invocation{Args: args})
}

// RunInSession runs the binary with args against panel session sessionID
// instead of the default session
func RunInSession(tb testing.TB, env *TestEnvironment, sessionID string, args ...string) CommandResult {
	tb.Helper()
	return Run(tb, env, Invocation{
		Args: args,
		Env:  []string{"PANELBRIDGE_SESSION=" + sessionID},
	})
}

// Run executes inv. A run that cannot start or exceeds its timeout
// reports exit code -1.
func Run(tb testing.TB, env *TestEnvironment, inv Invocation) CommandResult {
	tb.Helper()

	timeout := inv.Timeout
	if timeout == 0 {
		timeout = runTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, inv.Args...)
	cmd.Env = append(env.Environ(), inv.Env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{Args: inv.Args}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("panelbridge %v timed out after %v", inv.Args, timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("panelbridge %v did not run: %v", inv.Args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
