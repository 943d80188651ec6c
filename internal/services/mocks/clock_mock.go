package mocks

import (
	"devops-webapp/internal/models"
	"devops-webapp/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockClockService is a mock implementation of services.ClockService
type MockClockService struct {
	mock.Mock
}

var _ services.ClockService = (*MockClockService)(nil)

func (m *MockClockService) GetTime() models.TimeInfo {
	args := m.Called()
	return args.Get(0).(models.TimeInfo)
}
