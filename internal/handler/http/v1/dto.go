package v1

import (
	"time"
)

// ReportIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте. Пустые поля заменяются значениями по умолчанию
type ReportIncidentRequest struct {
	ReporterName string `json:"reporter_name" validate:"max=255"`
	Type         string `json:"type" validate:"max=64"`
	Location     string `json:"location" validate:"max=255"`
	Urgency      int    `json:"urgency"`
}

// LaunchDrillRequest DTO для запуска учений
// @Description DTO для запуска учений, batch_size по умолчанию берется из конфигурации
type LaunchDrillRequest struct {
	BatchSize int `json:"batch_size" validate:"omitempty,min=1,max=500"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            string     `json:"id"`
	Reporter      string     `json:"reporter"`
	Type          string     `json:"type"`
	Icon          string     `json:"icon"`
	Location      string     `json:"location"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Severity      int        `json:"severity"`
	SeverityLabel string     `json:"severity_label"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ResolveResponse DTO для ответа на закрытие инцидента
// @Description DTO для ответа на закрытие инцидента
type ResolveResponse struct {
	IncidentID string            `json:"incident_id"`
	Resolved   bool              `json:"resolved"`
	Responder  string            `json:"responder,omitempty"`
	Points     int               `json:"points,omitempty"`
	Credited   bool              `json:"credited"`
	Incident   *IncidentResponse `json:"incident,omitempty"`
}

// DrillResponse DTO для ответа на запуск учений
// @Description DTO для ответа на запуск учений
type DrillResponse struct {
	Batch     int                 `json:"batch"`
	Count     int                 `json:"count"`
	Incidents []*IncidentResponse `json:"incidents"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Resolved   int            `json:"resolved"`
	ByType     map[string]int `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
}

// PinResponse DTO для метки на карте
// @Description DTO для метки на карте
type PinResponse struct {
	IncidentID string  `json:"incident_id"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Severity   int     `json:"severity"`
	Status     string  `json:"status"`
}

// LeaderboardEntryResponse DTO для строки таблицы лидеров
// @Description DTO для строки таблицы лидеров
type LeaderboardEntryResponse struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak"`
	Rank     string `json:"rank"`
}
