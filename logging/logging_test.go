package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("invalid direction, defaulting to ascending", zap.String("token", "up"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "up", entry["token"])
	assert.Contains(t, entry, "ts")
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", "console", &buf)
	require.NoError(t, err)

	logger.Debug("expanded chord", zap.Int("notes", 4))
	assert.Contains(t, buf.String(), "expanded chord")
	assert.Contains(t, buf.String(), `{"notes": 4}`)
}

func TestInvalidSettings(t *testing.T) {
	_, err := NewWithWriter("loud", "json", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")

	_, err = NewWithWriter("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log format")
}
