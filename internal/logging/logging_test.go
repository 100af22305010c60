package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDisabled(t *testing.T) {
	t.Setenv("PANELBRIDGE_DEBUG", "")
	t.Setenv("PANELBRIDGE_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitializeCustomFile(t *testing.T) {
	t.Setenv("PANELBRIDGE_DEBUG", "")
	t.Setenv("PANELBRIDGE_DEBUG_FILE", "")
	logPath := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(true, logPath, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logPath, path)

	Logger.Info("hello", "key", "value")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitializeRotates(t *testing.T) {
	t.Setenv("PANELBRIDGE_DEBUG", "")
	t.Setenv("PANELBRIDGE_DEBUG_FILE", "")
	dir := t.TempDir()

	origLogDirFunc := logDirFunc
	logDirFunc = func() (string, error) { return dir, nil }
	defer func() { logDirFunc = origLogDirFunc }()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, nil, 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	path, err := Initialize(true, "", 2)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	_, err = os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "second oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "c.log"))
	assert.NoError(t, err)
}
