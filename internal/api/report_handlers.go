package api

import (
	"fmt"
	"log"
	"net/http"

	"thaovyxe/internal/entities"
	"thaovyxe/internal/service"
)

// ReportHandler serves the booking statistics and the xlsx export.
type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) BookingStats(w http.ResponseWriter, r *http.Request) {
	filter := entities.BookingFilter{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	stats, err := h.Service.Stats(filter, r.URL.Query().Get("groupBy"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, stats)
}

func (h *ReportHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	filter := entities.BookingFilter{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Status:    r.URL.Query().Get("status"),
	}
	file, filename, err := h.Service.Export(filter)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := file.Write(w); err != nil {
		log.Printf("Error writing export response: %v", err)
	}
}
