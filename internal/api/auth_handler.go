package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}

	result, err := h.Service.Login(&req, clientIP(r), r.UserAgent())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Đăng nhập thành công",
		"user":      result.User,
		"token":     result.Token,
		"sessionId": result.SessionID,
	})
}

// clientIP prefers the first X-Forwarded-For hop when a proxy fronts the
// server, falling back to the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
