package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devops-webapp/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	rr := serve(NotFound, http.MethodGet, "/does-not-exist")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not Found","message":"Route /does-not-exist not found"}`, rr.Body.String())
}

func TestNotFound_KeepsQueryString(t *testing.T) {
	rr := serve(NotFound, http.MethodPost, "/missing?page=2")

	var resp models.ErrorResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Route /missing?page=2 not found", resp.Message)
}

func TestNotFound_WithoutRequestURI(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com/a/b", nil)
	assert.NoError(t, err)
	rr := httptest.NewRecorder()

	NotFound(rr, req)

	var resp models.ErrorResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Route /a/b not found", resp.Message)
}

func TestInternalError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	rr := httptest.NewRecorder()

	InternalError(rr, req, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!","message":"disk on fire"}`, rr.Body.String())
}

func TestRespondWithJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	respondWithJSON(rr, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Something went wrong!")
}
