// filepath: internal/api/handlers/main.go
package handlers

import (
	"devops-webapp/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Health services.HealthService
	Clock  services.ClockService
	Info   services.InfoService
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	health services.HealthService,
	clock services.ClockService,
	info services.InfoService,
) *Handlers {
	return &Handlers{
		Health: health,
		Clock:  clock,
		Info:   info,
	}
}
