// filepath: internal/services/info_service.go
package services

import (
	"devops-webapp/internal/models"
	"runtime"
)

// Static application metadata reported by GET /api/info.
const (
	AppName        = "DevOps Starter Pack Web App"
	AppDescription = "Minimal Working Example (MWE) web application"
	AppAuthor      = "mhamdi"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	info models.Info
}

// NewInfoService creates a new InfoService. The payload is built once.
func NewInfoService(version string) *infoService {
	return &infoService{
		info: models.Info{
			Name:           AppName,
			Version:        version,
			Description:    AppDescription,
			Author:         AppAuthor,
			RuntimeVersion: runtime.Version(),
			Platform:       runtime.GOOS,
			Architecture:   runtime.GOARCH,
		},
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return s.info
}
