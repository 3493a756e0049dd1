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

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
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
		"success":   true,
		"message":   "Đặt lịch thành công! Chúng tôi sẽ liên hệ với bạn sớm nhất.",
		"bookingId": id,
	})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, bookings)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	booking, err := h.Service.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, booking)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	var req entities.BookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrValidation("Invalid request body"))
		return
	}
	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Booking status updated successfully")
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apperrors.ErrValidation("Invalid ID"))
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "Booking deleted successfully")
}
