package logger

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that Nop produces a disabled logger.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestFromRequest_ReturnsAttachedLogger verifies that a logger attached to a
// request context via WithContext is recoverable with FromRequest.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req-role")
	l.Logger = l.Output(&buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)
	got.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("parent-role")
	l.Logger = l.Output(&buf)

	child := l.GetChildLogger()
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}
