package handlers

import (
	"net/http"
)

// @Summary Get current time
// @Description Returns the current instant as ISO-8601 and epoch milliseconds, plus the server timezone.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.TimeInfo
// @Router /time [get]
func (h *Handlers) GetTime(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Clock.GetTime())
}
