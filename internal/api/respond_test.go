package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "thaovyxe/internal/errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respondData(rec, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"a", "b"}, body["data"])
}

func TestRespondMessageEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respondMessage(rec, "Xóa dịch vụ thành công")

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Xóa dịch vụ thành công", body["message"])
}

func TestRespondErrorKeepsHTTPErrorMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, apperrors.ErrNotFound("Booking not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Booking not found", body["message"])
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Lỗi server", body["message"])
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = "192.168.1.10:54321"
	assert.Equal(t, "192.168.1.10", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))

	r = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", clientIP(r))
}
