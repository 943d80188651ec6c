package handlers

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"devops-webapp/internal/logging"

	"github.com/sirupsen/logrus"
)

// Titles of the two error kinds the API reports.
const (
	NotFoundTitle      = "Not Found"
	InternalErrorTitle = "Something went wrong!"
)

// NotFound answers every request no route or asset matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, NotFoundTitle, fmt.Sprintf("Route %s not found", originalURL(r)))
}

// InternalError reports an unexpected fault to the caller and logs it with a stack trace.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"stack":  string(debug.Stack()),
	}).Errorf("request failed: %v", err)

	respondWithError(w, http.StatusInternalServerError, InternalErrorTitle, err.Error())
}

// originalURL returns the request target as the client sent it.
func originalURL(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
