// filepath: internal/models/models.go
// Package models contains the response shapes served by the API.
package models

// Health is the payload of GET /api/health.
type Health struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"` // seconds since process start
	Environment string  `json:"environment"`
}

// TimeInfo is the payload of GET /api/time.
type TimeInfo struct {
	CurrentTime string `json:"currentTime"`
	Timezone    string `json:"timezone"`
	Timestamp   int64  `json:"timestamp"` // milliseconds since epoch
}

// Info represents general information about the application.
type Info struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Description    string `json:"description"`
	Author         string `json:"author"`
	RuntimeVersion string `json:"runtimeVersion"`
	Platform       string `json:"platform"`
	Architecture   string `json:"architecture"`
}

// ErrorResponse is the body of every 404 and 500 response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
