package models

// Stats - сводка для административной панели
type Stats struct {
	Total      int                  `json:"total"`
	Pending    int                  `json:"pending"`
	Resolved   int                  `json:"resolved"`
	ByType     map[IncidentType]int `json:"by_type"`
	BySeverity map[int]int          `json:"by_severity"`
}

// Pin - метка инцидента на карте
type Pin struct {
	IncidentID string         `json:"incident_id"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Severity   int            `json:"severity"`
	Status     IncidentStatus `json:"status"`
}

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak"`
	Tier     Tier   `json:"tier"`
}
