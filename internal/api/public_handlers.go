package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/service"
)

// PublicHandler serves the booking site: services, vehicles, posts and the
// contact form.
type PublicHandler struct {
	Content *service.ContentService
}

func NewPublicHandler(content *service.ContentService) *PublicHandler {
	return &PublicHandler{Content: content}
}

func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
}

func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Content.ListServices()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, services)
}

func (h *PublicHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	svc, err := h.Content.GetService(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, svc)
}

func (h *PublicHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Content.ListVehicles()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, vehicles)
}

func (h *PublicHandler) ListAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Content.ListAvailableVehicles()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, vehicles)
}

func (h *PublicHandler) ListVehicleTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Content.ListVehicleTypes()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, types)
}

func (h *PublicHandler) GetVehicleType(w http.ResponseWriter, r *http.Request) {
	vt, err := h.Content.GetVehicleTypeBySlug(mux.Vars(r)["slug"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, vt)
}

func (h *PublicHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Content.ListPosts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, posts)
}

func (h *PublicHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	post, err := h.Content.GetPost(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, post)
}

func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	id, err := h.Content.SubmitContact(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Gửi liên hệ thành công! Chúng tôi sẽ phản hồi sớm nhất.",
		"contactId": id,
	})
}
