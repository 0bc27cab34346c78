package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONWithAppField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithField("method", "ReportIncident").Info("Incident reported")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Incident reported", entry["msg"])
	assert.Equal(t, "ReportIncident", entry["method"])
	assert.Equal(t, AppName, entry["app"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("loud")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
