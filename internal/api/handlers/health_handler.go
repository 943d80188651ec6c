// internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"
)

// @Summary Health check
// @Description Confirms the server is running and reports uptime and environment. This is a public endpoint.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Health
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Health.GetHealth())
}
