// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"devops-webapp/internal/logging"
	"devops-webapp/internal/models"
)

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, title, message string) {
	respondWithJSON(w, code, models.ErrorResponse{Error: title, Message: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logging.Log.Errorf("respondWithJSON: failed to marshal %T: %v", payload, err)
		http.Error(w, `{"error":"Something went wrong!","message":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}
