package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/placegen/pkg/logger"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "placegen")),
	)

	log.Info("hello", logger.Count(3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "placegen", record["service"])
	assert.Equal(t, float64(3), record["count"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("production is JSON at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment("production", "placegen"),
			logger.WithOutput(&buf),
		)

		log.Debug("dropped")
		log.Info("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
		assert.Contains(t, out, `"env":"production"`)
	})

	t.Run("anything else is development text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment("local", "placegen"),
			logger.WithOutput(&buf),
		)

		log.Debug("kept")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestErrorAttr(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}
