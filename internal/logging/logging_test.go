package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("lesson loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"lesson loaded"`)
	assert.False(t, strings.Contains(out, "hidden"), "debug filtered at info level")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/state", "lessonbook", "lessonbook.log"), p)
}
