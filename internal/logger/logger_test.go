package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ddirect/orderedset/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_JSON(t *testing.T) {
	var b bytes.Buffer
	log, err := logger.New(logger.Config{Level: "debug", Format: logger.FormatJSON, Writer: &b})
	require.NoError(t, err)

	log.Debug().Int("len", 3).Msg("inserted")
	var line map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "inserted", line["message"])
	assert.EqualValues(t, 3, line["len"])
	assert.Contains(t, line, "time")
}

func Test_Level(t *testing.T) {
	var b bytes.Buffer
	log, err := logger.New(logger.Config{Level: "warn", Format: logger.FormatJSON, Writer: &b})
	require.NoError(t, err)
	log.Info().Msg("hidden")
	assert.Zero(t, b.Len())
	log.Warn().Msg("shown")
	assert.Contains(t, b.String(), "shown")
}

func Test_Console(t *testing.T) {
	var b bytes.Buffer
	log, err := logger.New(logger.Config{Writer: &b})
	require.NoError(t, err)
	log.Info().Str("key", "value").Msg("hello")
	assert.Contains(t, b.String(), "hello")
	assert.Contains(t, b.String(), "key=value")
}

func Test_Invalid(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
	_, err = logger.New(logger.Config{Format: "xml"})
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
