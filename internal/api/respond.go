package api

import (
	"encoding/json"
	"net/http"

	apperrors "thaovyxe/internal/errors"
)

// Every response is the uniform {success, data|message} envelope.

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

// respondError maps the error taxonomy onto HTTP statuses. Anything that is
// not an *HTTPError has already been logged server-side and surfaces as a
// generic 500.
func respondError(w http.ResponseWriter, err error) {
	message := err.Error()
	if _, ok := err.(*apperrors.HTTPError); !ok {
		message = "Lỗi server"
	}
	writeJSON(w, apperrors.StatusOf(err), map[string]interface{}{
		"success": false,
		"message": message,
	})
}
