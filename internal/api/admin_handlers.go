package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"thaovyxe/internal/db"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/service"
)

// AdminHandler serves the back-office CRUD over vehicles, services, posts
// and contacts, plus the dashboard counters.
type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Dashboard()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, stats)
}

// ===== Vehicles =====

func (h *AdminHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	id, err := h.Service.CreateVehicle(&v)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Thêm xe thành công",
		"vehicleId": id,
	})
}

func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.UpdateVehicle(id, &v); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Cập nhật xe thành công")
}

func (h *AdminHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.DeleteVehicle(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Vehicle deleted successfully")
}

// ===== Services =====

func (h *AdminHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListServices()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, services)
}

func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc db.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	id, err := h.Service.CreateService(&svc)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Thêm dịch vụ thành công",
		"serviceId": id,
	})
}

func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var svc db.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.UpdateService(id, &svc); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Cập nhật dịch vụ thành công")
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.DeleteService(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Xóa dịch vụ thành công")
}

// ===== Posts =====

func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.ListPosts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, posts)
}

func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var p db.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	id, err := h.Service.CreatePost(&p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Post created successfully",
		"postId":  id,
	})
}

func (h *AdminHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var p db.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.UpdatePost(id, &p); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Post updated successfully")
}

func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.DeletePost(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Post deleted successfully")
}

// ===== Contacts =====

func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.ListContacts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, contacts)
}

func (h *AdminHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.UpdateContactStatus(id, req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Contact status updated successfully")
}

func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.DeleteContact(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Contact deleted successfully")
}
