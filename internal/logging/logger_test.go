// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Level(42).String())
	assert.Equal(t, "warn", LevelWarn.String())
}

func TestLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Name: "lotka", Level: LevelWarn, Output: &buf})

	l.Info("hidden", "k", 1)
	l.Warn("shown", "steps", 300000)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "logger=lotka")
	assert.Contains(t, out, "steps=300000")
	assert.Equal(t, LevelWarn, l.GetLevel())
	assert.Equal(t, "lotka", l.Name())
}

func TestLogger_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Name: "leontief", Level: LevelDebug, Format: "json", Output: &buf}).
		WithRequestID("abc-123")

	l.Debug("solved", "sectors", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "leontief", rec["logger"])
	assert.Equal(t, "abc-123", rec["request_id"])
	assert.Equal(t, float64(3), rec["sectors"])
}

func TestNew_Defaults(t *testing.T) {
	l := New("mathmodels")
	assert.Equal(t, LevelInfo, l.GetLevel())
	assert.Equal(t, "mathmodels", l.Name())
}
