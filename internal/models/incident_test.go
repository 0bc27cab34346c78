package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIncident_FixedTypes(t *testing.T) {
	for urgency := 1; urgency <= 3; urgency++ {
		assert.Equal(t, 3, ScoreIncident(TypeMedicalEmergency, urgency))
		assert.Equal(t, 2, ScoreIncident(TypeFlood, urgency))
		assert.Equal(t, 1, ScoreIncident(TypeRoadblock, urgency))
	}
}

func TestScoreIncident_OtherUsesUrgency(t *testing.T) {
	for urgency := 1; urgency <= 3; urgency++ {
		assert.Equal(t, urgency, ScoreIncident(TypeOther, urgency))
	}
}

func TestParseIncidentType(t *testing.T) {
	assert.Equal(t, TypeFlood, ParseIncidentType("Flood"))
	assert.Equal(t, TypeMedicalEmergency, ParseIncidentType(" medical emergency "))
	assert.Equal(t, TypeOther, ParseIncidentType("Earthquake"))
	assert.Equal(t, TypeOther, ParseIncidentType(""))
}

func TestClampUrgency(t *testing.T) {
	assert.Equal(t, DefaultUrgency, ClampUrgency(0))
	assert.Equal(t, 1, ClampUrgency(-4))
	assert.Equal(t, 1, ClampUrgency(1))
	assert.Equal(t, 3, ClampUrgency(3))
	assert.Equal(t, 3, ClampUrgency(10))
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "High", SeverityLabel(3))
	assert.Equal(t, "Medium", SeverityLabel(2))
	assert.Equal(t, "Low", SeverityLabel(1))
}

func TestTypeIcon(t *testing.T) {
	assert.Equal(t, "🌊", TypeIcon(TypeFlood))
	assert.Equal(t, "⚠️", TypeIcon(TypeOther))
}
