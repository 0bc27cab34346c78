package v1

import (
	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/service"
)

// DTOToReportInput преобразует DTO сообщения во входные данные сервиса
func DTOToReportInput(dto ReportIncidentRequest) service.ReportInput {
	return service.ReportInput{
		Reporter: dto.ReporterName,
		Type:     dto.Type,
		Location: dto.Location,
		Urgency:  dto.Urgency,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		Reporter:      model.Reporter,
		Type:          string(model.Type),
		Icon:          models.TypeIcon(model.Type),
		Location:      model.Location,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Severity:      model.Severity,
		SeverityLabel: models.SeverityLabel(model.Severity),
		Status:        string(model.Status),
		CreatedAt:     model.CreatedAt,
		ResolvedAt:    model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ResolveResultToResponse преобразует итог закрытия в DTO
func ResolveResultToResponse(id string, result *service.ResolveResult) *ResolveResponse {
	resp := &ResolveResponse{
		IncidentID: id,
		Resolved:   result.Resolved,
		Responder:  result.Responder,
		Points:     result.Points,
		Credited:   result.Credited,
	}
	if result.Incident != nil {
		resp.Incident = ModelToIncidentResponse(result.Incident)
	}
	return resp
}

func DrillResultToResponse(result *service.DrillResult) *DrillResponse {
	return &DrillResponse{
		Batch:     result.Batch,
		Count:     len(result.Incidents),
		Incidents: ModelsToIncidentResponses(result.Incidents),
	}
}

// StatsToResponse переводит ключи гистограмм в строки для JSON
func StatsToResponse(stats *models.Stats) *StatsResponse {
	resp := &StatsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		Resolved:   stats.Resolved,
		ByType:     make(map[string]int, len(stats.ByType)),
		BySeverity: make(map[string]int, len(stats.BySeverity)),
	}
	for t, n := range stats.ByType {
		resp.ByType[string(t)] = n
	}
	for s, n := range stats.BySeverity {
		resp.BySeverity[models.SeverityLabel(s)] += n
	}
	return resp
}

func PinsToResponse(pins []models.Pin) []PinResponse {
	resp := make([]PinResponse, len(pins))
	for i, p := range pins {
		resp[i] = PinResponse{
			IncidentID: p.IncidentID,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Severity:   p.Severity,
			Status:     string(p.Status),
		}
	}
	return resp
}

func LeaderboardToResponse(entries []models.LeaderboardEntry) []LeaderboardEntryResponse {
	resp := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = LeaderboardEntryResponse{
			Position: e.Position,
			Name:     e.Name,
			Points:   e.Points,
			Streak:   e.Streak,
			Rank:     string(e.Tier),
		}
	}
	return resp
}
