package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(Config{Level: level, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })
	return &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestConfigure_FiltersByLevel(t *testing.T) {
	buf := capture(t, WarnLevel)

	Info().Msg("hidden")
	Warn().Str("cause", "timeout").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "timeout", entry["cause"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestWithFields(t *testing.T) {
	buf := capture(t, InfoLevel)

	l := WithFields(map[string]interface{}{"requestId": "abc", "attempt": 2})
	l.Info().Msg("retry")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["requestId"])
	assert.EqualValues(t, 2, entry["attempt"])
}

func TestCtx_FallsBackToPackageLogger(t *testing.T) {
	buf := capture(t, InfoLevel)

	Ctx(context.Background()).Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")

	var scoped bytes.Buffer
	l := zerolog.New(&scoped)
	Ctx(l.WithContext(context.Background())).Info().Msg("scoped")
	assert.Contains(t, scoped.String(), "scoped")
}
