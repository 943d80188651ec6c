// filepath: internal/services/health_service.go
package services

import (
	"devops-webapp/internal/models"
	"time"
)

// HealthStatus is the only status the health endpoint ever reports.
const HealthStatus = "healthy"

var _ HealthService = (*healthService)(nil)

type healthService struct {
	StartTime   time.Time
	Environment string
	now         func() time.Time
}

// NewHealthService creates a new HealthService measuring uptime from startTime.
func NewHealthService(startTime time.Time, environment string) *healthService {
	return &healthService{
		StartTime:   startTime,
		Environment: environment,
		now:         time.Now,
	}
}

// GetHealth returns the current health snapshot.
func (s *healthService) GetHealth() models.Health {
	now := s.now()
	uptime := now.Sub(s.StartTime).Seconds()
	if uptime < 0 {
		uptime = 0
	}
	return models.Health{
		Status:      HealthStatus,
		Timestamp:   FormatISO(now),
		Uptime:      uptime,
		Environment: s.Environment,
	}
}
