package api

import (
	"encoding/json"
	"net/http"

	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/service"
)

// AccountHandler serves user-account management and password changes.
type AccountHandler struct {
	Service *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, users)
}

func (h *AccountHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req entities.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	id, err := h.Service.Create(&req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thêm tài khoản thành công",
		"userId":  id,
	})
}

func (h *AccountHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var req entities.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.Update(id, &req); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Cập nhật tài khoản thành công")
}

func (h *AccountHandler) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	active, err := h.Service.ToggleActive(id)
	if err != nil {
		respondError(w, err)
		return
	}
	message := "Vô hiệu hóa tài khoản thành công"
	if active {
		message = "Kích hoạt tài khoản thành công"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   message,
		"is_active": active,
	})
}

func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Xóa tài khoản thành công")
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req entities.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.ChangePassword(&req); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Đổi mật khẩu thành công. Vui lòng đăng nhập lại.")
}
