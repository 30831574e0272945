package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, f := setupLogging(dir, false, "debug")
	require.NotNil(t, logger)
	assert.Nil(t, f)

	logger.Info("discarded")
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, f := setupLogging(dir, true, "info")
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.Info("round started", "round", 1)

	info, err := os.Stat(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSetupLogging_BadLevelFallsBackToDebug(t *testing.T) {
	logger, f := setupLogging(t.TempDir(), true, "loud")
	require.NotNil(t, f)
	defer f.Close()
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, f := setupLogging(dir, true, "debug")
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NotStdoutStderr(t *testing.T) {
	_, f := setupLogging(t.TempDir(), true, "debug")
	require.NotNil(t, f)
	defer f.Close()
	assert.NotEqual(t, os.Stdout.Name(), f.Name())
	assert.NotEqual(t, os.Stderr.Name(), f.Name())
}
