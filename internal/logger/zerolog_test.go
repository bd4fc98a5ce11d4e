package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN ", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning", zerolog.InfoLevel))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("verbose", zerolog.WarnLevel))
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Session", "capture started", map[string]interface{}{"device": 0})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Session", entry["component"])
	assert.Equal(t, "capture started", entry["message"])
	assert.EqualValues(t, 0, entry["device"])
}

func TestZerologAdapter_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Session", errors.New("no webcam"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "no webcam", entry["error"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Session", "tick", nil)
	log.Info("Session", "tick", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Session", "slow tick", nil)
	assert.NotZero(t, buf.Len())
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info("c", "m", nil)
		log.Error("c", errors.New("e"), nil)
	})
}
