package models

import (
	"errors"
	"strings"
	"time"
)

// ErrIncidentNotFound возвращается, если инцидента с таким ID нет
var ErrIncidentNotFound = errors.New("incident not found")

type IncidentType string

const (
	TypeMedicalEmergency IncidentType = "Medical Emergency"
	TypeFlood            IncidentType = "Flood"
	TypeRoadblock        IncidentType = "Roadblock"
	TypeOther            IncidentType = "Other"
)

// IncidentTypes - все допустимые типы в порядке отображения
var IncidentTypes = []IncidentType{TypeMedicalEmergency, TypeFlood, TypeRoadblock, TypeOther}

type IncidentStatus string

const (
	StatusPending  IncidentStatus = "Pending"
	StatusResolved IncidentStatus = "Resolved"
)

const (
	DefaultReporter = "Anonymous"
	DefaultLocation = "(no address)"
	DefaultUrgency  = 2

	MinSeverity = 1
	MaxSeverity = 3
)

// typeWeights - фиксированная тяжесть для известных типов; Other берет срочность как есть
var typeWeights = map[IncidentType]int{
	TypeMedicalEmergency: 3,
	TypeFlood:            2,
	TypeRoadblock:        1,
}

var typeIcons = map[IncidentType]string{
	TypeMedicalEmergency: "🩺",
	TypeFlood:            "🌊",
	TypeRoadblock:        "🚧",
}

type Incident struct {
	ID         string         `json:"id"`
	Reporter   string         `json:"reporter"`
	Type       IncidentType   `json:"type"`
	Location   string         `json:"location"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Severity   int            `json:"severity"`
	Status     IncidentStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}

// IsPending сообщает, можно ли еще закрыть инцидент
func (i *Incident) IsPending() bool {
	return i.Status == StatusPending
}

// ParseIncidentType приводит произвольную строку к типу инцидента, неизвестные значения становятся Other
func ParseIncidentType(s string) IncidentType {
	s = strings.TrimSpace(s)
	for _, t := range IncidentTypes {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return TypeOther
}

// ClampUrgency приводит срочность к диапазону 1..3, 0 означает "не указано"
func ClampUrgency(urgency int) int {
	switch {
	case urgency == 0:
		return DefaultUrgency
	case urgency < MinSeverity:
		return MinSeverity
	case urgency > MaxSeverity:
		return MaxSeverity
	}
	return urgency
}

// ScoreIncident вычисляет тяжесть инцидента
func ScoreIncident(t IncidentType, urgency int) int {
	if w, ok := typeWeights[t]; ok {
		return w
	}
	return urgency
}

// SeverityLabel возвращает текстовую метку тяжести
func SeverityLabel(severity int) string {
	switch severity {
	case 3:
		return "High"
	case 2:
		return "Medium"
	}
	return "Low"
}

func TypeIcon(t IncidentType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return "⚠️"
}
