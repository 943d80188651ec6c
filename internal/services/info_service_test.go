package services

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoService_GetInfo(t *testing.T) {
	svc := NewInfoService("1.0.0")
	info := svc.GetInfo()

	assert.Equal(t, "DevOps Starter Pack Web App", info.Name)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "Minimal Working Example (MWE) web application", info.Description)
	assert.Equal(t, "mhamdi", info.Author)
	assert.Equal(t, runtime.Version(), info.RuntimeVersion)
	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Architecture)

	// Constant across calls
	assert.Equal(t, info, svc.GetInfo())
}
