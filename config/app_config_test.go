package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, "difficulty: 2\ndata_file: /tmp/test.db\nlog_level: debug\n")
	c, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, 2, c.Difficulty)
	assert.Equal(t, "/tmp/test.db", c.DataFile)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, "difficulty: 5\n")
	c, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, 5, c.Difficulty)
	assert.Equal(t, Default().DataFile, c.DataFile)
	assert.Equal(t, Default().LogLevel, c.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
	// Callers may still run on the returned defaults.
	assert.Equal(t, Default(), c)
}

func TestLoadRejectsNegativeDifficulty(t *testing.T) {
	path := writeTempConfig(t, "difficulty: -3\n")
	_, err := Load(path)
	assert.NotNil(t, err)
}
