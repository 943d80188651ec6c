package mocks

import (
	"devops-webapp/internal/models"
	"devops-webapp/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockHealthService is a mock implementation of services.HealthService
type MockHealthService struct {
	mock.Mock
}

var _ services.HealthService = (*MockHealthService)(nil)

func (m *MockHealthService) GetHealth() models.Health {
	args := m.Called()
	return args.Get(0).(models.Health)
}
