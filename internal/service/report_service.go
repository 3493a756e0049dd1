package service

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

const exportSheet = "Đơn Đặt Xe"

// ReportService aggregates booking counts and renders the xlsx export.
type ReportService struct {
	Repo repository.BookingRepository
}

func NewReportService(repo repository.BookingRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// PeriodExpr maps a grouping granularity to the to_char expression used for
// bucket labels. Unknown values fall back to daily buckets.
func PeriodExpr(groupBy string) string {
	switch groupBy {
	case "month":
		return `to_char(created_at, 'YYYY-MM')`
	case "year":
		return `to_char(created_at, 'YYYY')`
	default:
		return `to_char(created_at, 'YYYY-MM-DD')`
	}
}

func (s *ReportService) Stats(filter entities.BookingFilter, groupBy string) (*entities.BookingStats, error) {
	buckets, err := s.Repo.Stats(filter, PeriodExpr(groupBy))
	if err != nil {
		log.Printf("Error fetching booking statistics: %v", err)
		return nil, apperrors.ErrStorage("Error fetching statistics")
	}
	summary, err := s.Repo.Summary(filter)
	if err != nil {
		log.Printf("Error fetching booking summary: %v", err)
		return nil, apperrors.ErrStorage("Error fetching statistics")
	}
	if buckets == nil {
		buckets = []entities.StatBucket{}
	}
	return &entities.BookingStats{Statistics: buckets, Summary: summary}, nil
}

var exportColumns = []struct {
	Header string
	Width  float64
}{
	{"Mã đơn", 10},
	{"Khách hàng", 25},
	{"Điện thoại", 15},
	{"Email", 30},
	{"Điểm đón", 30},
	{"Điểm trả", 30},
	{"Ngày đón", 12},
	{"Giờ đón", 10},
	{"Số hành khách", 15},
	{"Loại dịch vụ", 20},
	{"Xe", 25},
	{"Loại xe", 15},
	{"Trạng thái", 15},
	{"Ghi chú", 40},
	{"Ngày tạo", 20},
}

// ExportFilename builds the attachment name for an export generated at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("don-dat-xe-%d.xlsx", t.UnixMilli())
}

// Export renders the filtered bookings into a styled worksheet with
// Vietnamese headers and localized status text.
func (s *ReportService) Export(filter entities.BookingFilter) (*excelize.File, string, error) {
	bookings, err := s.Repo.ListForExport(filter)
	if err != nil {
		log.Printf("Error exporting bookings: %v", err)
		return nil, "", apperrors.ErrStorage("Error exporting data")
	}

	loc := vietnamLocation()
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, col.Header)
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, colName, colName, col.Width)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		f.SetCellStyle(exportSheet, "A1", lastCell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		email, dropoff, serviceType, notes, vehicleName, vehicleType := "", "", "", "", "", ""
		if b.CustomerEmail != nil {
			email = *b.CustomerEmail
		}
		if b.DropoffLocation != nil {
			dropoff = *b.DropoffLocation
		}
		if b.ServiceType != nil {
			serviceType = *b.ServiceType
		}
		if b.Notes != nil {
			notes = *b.Notes
		}
		if b.VehicleName != nil {
			vehicleName = *b.VehicleName
		}
		if b.VehicleType != nil {
			vehicleType = *b.VehicleType
		}
		passengers := ""
		if b.NumberOfPassengers != nil {
			passengers = fmt.Sprintf("%d", *b.NumberOfPassengers)
		}

		values := []interface{}{
			b.ID,
			b.CustomerName,
			b.CustomerPhone,
			email,
			b.PickupLocation,
			dropoff,
			b.PickupDate.In(loc).Format("02/01/2006"),
			b.PickupTime,
			passengers,
			serviceType,
			vehicleName,
			vehicleType,
			StatusText(b.Status),
			notes,
			b.CreatedAt.In(loc).Format("02/01/2006 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	return f, ExportFilename(time.Now()), nil
}
