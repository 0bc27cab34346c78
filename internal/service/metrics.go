package service

// Metrics - счетчики, которые сервисы обновляют при изменении состояния
type Metrics interface {
	IncidentReported(incidentType string)
	IncidentResolved()
	DrillLaunched()
	PointsAwarded(helper string, points int)
}

type noopMetrics struct{}

func (noopMetrics) IncidentReported(string)   {}
func (noopMetrics) IncidentResolved()         {}
func (noopMetrics) DrillLaunched()            {}
func (noopMetrics) PointsAwarded(string, int) {}
