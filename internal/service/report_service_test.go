package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
)

func TestPeriodExpr(t *testing.T) {
	assert.Equal(t, `to_char(created_at, 'YYYY-MM')`, PeriodExpr("month"))
	assert.Equal(t, `to_char(created_at, 'YYYY')`, PeriodExpr("year"))
	assert.Equal(t, `to_char(created_at, 'YYYY-MM-DD')`, PeriodExpr("day"))
	assert.Equal(t, `to_char(created_at, 'YYYY-MM-DD')`, PeriodExpr(""))
	assert.Equal(t, `to_char(created_at, 'YYYY-MM-DD')`, PeriodExpr("week"))
}

func TestStatsEmptyBucketsSerializeAsList(t *testing.T) {
	repo := &fakeBookingRepo{summary: entities.StatSummary{Total: 0}}
	svc := NewReportService(repo)

	stats, err := svc.Stats(entities.BookingFilter{}, "month")
	require.NoError(t, err)
	require.NotNil(t, stats.Statistics)
	assert.Len(t, stats.Statistics, 0)
	assert.Equal(t, `to_char(created_at, 'YYYY-MM')`, repo.statsExpr)
}

func TestExportFilename(t *testing.T) {
	ts := time.UnixMilli(1756500000000)
	assert.Equal(t, "don-dat-xe-1756500000000.xlsx", ExportFilename(ts))
}

func TestExportWorksheet(t *testing.T) {
	email := "kh@example.com"
	vehicle := "Toyota Fortuner"
	passengers := 4
	repo := &fakeBookingRepo{exportRows: []db.Booking{{
		ID:                 12,
		CustomerName:       "Trần Thị B",
		CustomerPhone:      "0912345678",
		CustomerEmail:      &email,
		PickupLocation:     "Hà Nội",
		PickupDate:         time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		PickupTime:         "07:00",
		NumberOfPassengers: &passengers,
		Status:             "confirmed",
		CreatedAt:          time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC),
		VehicleName:        &vehicle,
	}}}
	svc := NewReportService(repo)

	f, filename, err := svc.Export(entities.BookingFilter{Status: "confirmed"})
	require.NoError(t, err)
	assert.Contains(t, filename, "don-dat-xe-")
	assert.Equal(t, "confirmed", repo.exportFilter.Status)

	header, err := f.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mã đơn", header)

	name, _ := f.GetCellValue(exportSheet, "B2")
	assert.Equal(t, "Trần Thị B", name)
	status, _ := f.GetCellValue(exportSheet, "M2")
	assert.Equal(t, "Đã xác nhận", status)
	vehicleCell, _ := f.GetCellValue(exportSheet, "K2")
	assert.Equal(t, "Toyota Fortuner", vehicleCell)
}

func TestExportHeadersCoverEveryColumn(t *testing.T) {
	svc := NewReportService(&fakeBookingRepo{})
	f, _, err := svc.Export(entities.BookingFilter{})
	require.NoError(t, err)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		value, err := f.GetCellValue(exportSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, col.Header, value)
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Chờ xác nhận", StatusText("pending"))
	assert.Equal(t, "Đã xác nhận", StatusText("confirmed"))
	assert.Equal(t, "Hoàn thành", StatusText("completed"))
	assert.Equal(t, "Đã hủy", StatusText("cancelled"))
	assert.Equal(t, "archived", StatusText("archived"))
}
