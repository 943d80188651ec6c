// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devops-webapp/internal/services/mocks"

	"github.com/stretchr/testify/require"
)

// newTestHandlers wires Handlers to fresh mocks.
func newTestHandlers() (*Handlers, *mocks.MockHealthService, *mocks.MockClockService, *mocks.MockInfoService) {
	health := new(mocks.MockHealthService)
	clock := new(mocks.MockClockService)
	info := new(mocks.MockInfoService)
	return NewHandlers(health, clock, info), health, clock, info
}

// decodeBody unmarshals the recorded JSON body into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

func serve(h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}
