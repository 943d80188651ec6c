// filepath: internal/services/interfaces.go
package services

import (
	"devops-webapp/internal/models"
)

// HealthService reports liveness data for GET /api/health.
type HealthService interface {
	GetHealth() models.Health
}

// ClockService reports the current instant for GET /api/time.
type ClockService interface {
	GetTime() models.TimeInfo
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}
