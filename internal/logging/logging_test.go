package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("avatar stored", "user_id", "user:1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "avatar stored", entry["msg"])
	assert.Equal(t, "user:1", entry["user_id"])
}

func TestNewLogger_TextDefaultsToDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "", "")

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "source=")
}
