package app

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("debug level passes debug records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger("debug", "text", &buf)
		logger.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("info level drops debug records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger("info", "text", &buf)
		logger.Debug("hidden")
		logger.Info("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger("chatty", "text", &buf)
		logger.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("json format emits json records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger("info", "json", &buf)
		logger.Info("hello", "k", "v")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "v", record["k"])
	})
}
