package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("file", "a.pdf").Warn("render failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "a.pdf", entry["file"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "render failed", entry["msg"])
}

func TestNewWithWriterBadLevel(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud", false)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
