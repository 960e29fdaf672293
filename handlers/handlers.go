// Package handlers provides HTTP request handlers for the consultation API
// endpoints. It implements the HTTPHandler interface with dependency
// injection and owns response formatting and error mapping.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/remedia/remedia-api/interfaces"
	"github.com/remedia/remedia-api/logging"
)

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	RespondWithJSON(w, code, errorResponse)
}

// HealthCheck returns server health information using the injected checker
func HealthCheck(checker interfaces.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, data, httpStatus := checker.HealthCheck()

		response := map[string]interface{}{
			"status":     status,
			"next_sweep": checker.CalculateNextSweep().Format(time.RFC3339),
			"data":       data,
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
