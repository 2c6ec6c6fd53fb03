package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T, home string, err error) {
	t.Helper()
	old := userHomeDir
	userHomeDir = func() (string, error) { return home, err }
	t.Cleanup(func() { userHomeDir = old })
}

func TestResolveExplicitFlag(t *testing.T) {
	t.Setenv(EnvFileName, "/from/env.json")
	withHome(t, "", errors.New("no home"))

	cfg, err := Resolve("/tmp/list.json", false)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/list.json", cfg.FileName)
}

func TestResolveFromEnv(t *testing.T) {
	t.Setenv(EnvFileName, "/from/env.json")
	withHome(t, "/home/user", nil)

	cfg, err := Resolve("", false)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.json", cfg.FileName)
}

func TestResolveDefaultHome(t *testing.T) {
	t.Setenv(EnvFileName, "")
	withHome(t, "/home/user", nil)

	cfg, err := Resolve("", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", DefaultFileName), cfg.FileName)
	assert.True(t, cfg.Verbose)
}

func TestResolveNoHome(t *testing.T) {
	t.Setenv(EnvFileName, "")
	withHome(t, "", errors.New("no home"))

	_, err := Resolve("", false)
	assert.ErrorIs(t, err, ErrNoFileName)
	assert.EqualError(t, err, "file name not found")
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{FileName: "x.json"}).Validate())
	assert.NoError(t, (&Config{FileName: filepath.Join(t.TempDir(), "missing.json")}).Validate())
}

func TestResolveRejectsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	t.Setenv(EnvFileName, dir)
	_, err = Resolve("", false)
	assert.Error(t, err)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	(&Config{}).Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	(&Config{Verbose: true}).Logger(&buf).Debug("shown", "count", 2)
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "count=2")
}
