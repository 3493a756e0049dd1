package service

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
)

type fakeBookingRepo struct {
	created   *db.Booking
	createErr error

	bookings map[int]*db.Booking

	updatedID     int
	updatedStatus string
	updateOK      bool
	updateErr     error

	deleteOK  bool
	deleteErr error

	statsBuckets []entities.StatBucket
	statsExpr    string
	summary      entities.StatSummary
	exportRows   []db.Booking
	exportFilter entities.BookingFilter
}

func (f *fakeBookingRepo) Create(b *db.Booking) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = b
	return 42, nil
}

func (f *fakeBookingRepo) List() ([]db.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) GetByID(id int) (*db.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeBookingRepo) UpdateStatus(id int, status string) (bool, error) {
	f.updatedID = id
	f.updatedStatus = status
	return f.updateOK, f.updateErr
}

func (f *fakeBookingRepo) Delete(id int) (bool, error) { return f.deleteOK, f.deleteErr }

func (f *fakeBookingRepo) Stats(filter entities.BookingFilter, periodExpr string) ([]entities.StatBucket, error) {
	f.statsExpr = periodExpr
	return f.statsBuckets, nil
}

func (f *fakeBookingRepo) Summary(filter entities.BookingFilter) (entities.StatSummary, error) {
	return f.summary, nil
}

func (f *fakeBookingRepo) ListForExport(filter entities.BookingFilter) ([]db.Booking, error) {
	f.exportFilter = filter
	return f.exportRows, nil
}

type fakeSender struct {
	notifiedBooking *db.Booking
	notifiedStatus  string
	alertEmail      string
	alertData       entities.SessionAlertData
	alerts          int
}

func (f *fakeSender) SendBookingStatusNotification(booking *db.Booking, status string) {
	f.notifiedBooking = booking
	f.notifiedStatus = status
}

func (f *fakeSender) SendSessionAlert(toEmail string, data entities.SessionAlertData) {
	f.alertEmail = toEmail
	f.alertData = data
	f.alerts++
}

func validBookingRequest() *entities.BookingRequest {
	return &entities.BookingRequest{
		CustomerName:   "Nguyễn Văn A",
		CustomerPhone:  "0901234567",
		PickupLocation: "Sân bay Nội Bài",
		PickupDate:     "2026-09-15",
		PickupTime:     "08:30",
	}
}

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, &fakeSender{})

	id, err := svc.Create(validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	require.NotNil(t, repo.created)
	assert.Equal(t, statusPending, repo.created.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), repo.created.PickupDate)
}

func TestCreateBookingRequiresCoreFields(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeSender{})

	for _, mutate := range []func(*entities.BookingRequest){
		func(r *entities.BookingRequest) { r.CustomerName = "" },
		func(r *entities.BookingRequest) { r.CustomerPhone = "" },
		func(r *entities.BookingRequest) { r.PickupLocation = "" },
		func(r *entities.BookingRequest) { r.PickupDate = "" },
		func(r *entities.BookingRequest) { r.PickupTime = "" },
	} {
		req := validBookingRequest()
		mutate(req)
		_, err := svc.Create(req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	}
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeSender{})

	req := validBookingRequest()
	req.PickupDate = "15/09/2026"
	_, err := svc.Create(req)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))

	req = validBookingRequest()
	bad := "not-a-date"
	req.ReturnDate = &bad
	_, err = svc.Create(req)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestCreateBookingStorageFailure(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
	svc := NewBookingService(repo, &fakeSender{})

	_, err := svc.Create(validBookingRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
	assert.Equal(t, "Lỗi khi tạo đặt lịch. Vui lòng thử lại.", err.Error())
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	repo := &fakeBookingRepo{updateOK: true}
	svc := NewBookingService(repo, &fakeSender{})

	err := svc.UpdateStatus(1, "shipped")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Empty(t, repo.updatedStatus)

	for _, status := range []string{"pending", "confirmed", "completed", "cancelled"} {
		repo.bookings = map[int]*db.Booking{1: {ID: 1, Status: status}}
		require.NoError(t, svc.UpdateStatus(1, status))
		assert.Equal(t, status, repo.updatedStatus)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{updateOK: false}, &fakeSender{})
	err := svc.UpdateStatus(99, "confirmed")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestUpdateStatusNotifiesOnConfirmAndCancel(t *testing.T) {
	booking := &db.Booking{ID: 7, CustomerName: "B", CustomerPhone: "0900000000"}
	repo := &fakeBookingRepo{updateOK: true, bookings: map[int]*db.Booking{7: booking}}
	sender := &fakeSender{}
	svc := NewBookingService(repo, sender)

	require.NoError(t, svc.UpdateStatus(7, "confirmed"))
	assert.Equal(t, booking, sender.notifiedBooking)
	assert.Equal(t, "confirmed", sender.notifiedStatus)

	require.NoError(t, svc.UpdateStatus(7, "cancelled"))
	assert.Equal(t, "cancelled", sender.notifiedStatus)
}

func TestUpdateStatusSilentForCompleted(t *testing.T) {
	repo := &fakeBookingRepo{updateOK: true, bookings: map[int]*db.Booking{7: {ID: 7}}}
	sender := &fakeSender{}
	svc := NewBookingService(repo, sender)

	require.NoError(t, svc.UpdateStatus(7, "completed"))
	assert.Nil(t, sender.notifiedBooking)
}

func TestGetBookingNotFound(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{}, &fakeSender{})
	_, err := svc.GetByID(5)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{deleteOK: false}, &fakeSender{})
	err := svc.Delete(5)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}
