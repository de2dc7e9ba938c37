package runlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRotate(t *testing.T) {
	tmpDir := t.TempDir()
	fileName := filepath.Join(tmpDir, "genproject.log")

	logger := NewLogger(LoggerOpts{Filename: fileName, MaxSize: 1})
	entries := &log.Logger{Handler: logger.Handler(), Level: log.InfoLevel}

	// Write one test message to create a log file.
	entries.Info("Test msg 1")
	assert.FileExists(t, fileName)

	require.NoError(t, os.Rename(fileName, fileName+".old"))
	assert.NoFileExists(t, fileName)
	entries.Info("Test msg 2")
	require.NoError(t, logger.Rotate())

	// Check that file is re-created.
	assert.FileExists(t, fileName)

	entries.WithField("path", "/tmp/app").Info("Test msg 3")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(fileName + ".old")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test msg 1")
	assert.Contains(t, string(content), "Test msg 2")

	content, err = os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test msg 3")
	assert.Contains(t, string(content), "path=/tmp/app")

	assert.Equal(t, fileName, logger.GetOpts().Filename)
}

func TestCustomLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomLogger(&buf)
	entries := &log.Logger{Handler: logger.Handler(), Level: log.DebugLevel}

	entries.Debugf("Copying %s", "README.md")
	assert.Contains(t, buf.String(), "Copying README.md")
	assert.NoError(t, logger.Rotate())
	assert.NoError(t, logger.Close())
}
