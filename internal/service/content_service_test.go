package service

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
)

type fakeServiceRepo struct {
	services []db.Service
}

func (f *fakeServiceRepo) List() ([]db.Service, error)          { return f.services, nil }
func (f *fakeServiceRepo) ListByCreated() ([]db.Service, error) { return f.services, nil }
func (f *fakeServiceRepo) GetByID(id int) (*db.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, sql.ErrNoRows
}
func (f *fakeServiceRepo) Create(s *db.Service) (int, error)        { return 1, nil }
func (f *fakeServiceRepo) Update(id int, s *db.Service) (bool, error) { return true, nil }
func (f *fakeServiceRepo) Delete(id int) (bool, error)              { return true, nil }

type fakeContactRepo struct {
	created *db.Contact
}

func (f *fakeContactRepo) Create(c *db.Contact) (int, error) {
	f.created = c
	return 9, nil
}
func (f *fakeContactRepo) List() ([]db.Contact, error)                  { return nil, nil }
func (f *fakeContactRepo) UpdateStatus(id int, status string) (bool, error) { return true, nil }
func (f *fakeContactRepo) Delete(id int) (bool, error)                  { return true, nil }

func TestSlugify(t *testing.T) {
	assert.Equal(t, "dua-don-san-bay", Slugify("Đưa đón sân bay"))
	assert.Equal(t, "thue-xe-theo-ngay", Slugify("Thuê xe theo ngày"))
	assert.Equal(t, "du-lich", Slugify("  Du   lịch  "))
	assert.Equal(t, "airport-transfer", Slugify("Airport Transfer"))
}

func TestListServicesDecoration(t *testing.T) {
	curated := "/uploads/custom.jpg"
	repo := &fakeServiceRepo{services: []db.Service{
		{ID: 1, Name: "Đưa đón sân bay"},
		{ID: 2, Name: "Thuê xe theo ngày", Image: &curated},
	}}
	svc := NewContentService(repo, nil, nil, nil)

	views, err := svc.ListServices()
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "dua-don-san-bay", views[0].Slug)
	assert.Equal(t, defaultServiceIcons[0], views[0].Icon)
	assert.Equal(t, defaultServiceImages[0], views[0].ImageURL)
	assert.Equal(t, defaultServiceFeatures, views[0].Features)
	assert.Equal(t, 1, views[0].DisplayOrder)

	assert.Equal(t, curated, views[1].ImageURL, "curated image wins over the fallback")
	assert.Equal(t, 2, views[1].DisplayOrder)
}

func TestListServicesIconFallbackPastDefaults(t *testing.T) {
	services := make([]db.Service, len(defaultServiceIcons)+1)
	for i := range services {
		services[i] = db.Service{ID: i + 1, Name: "Dịch vụ"}
	}
	svc := NewContentService(&fakeServiceRepo{services: services}, nil, nil, nil)

	views, err := svc.ListServices()
	require.NoError(t, err)
	assert.Equal(t, "fa-car", views[len(views)-1].Icon)
}

func TestGetServiceNotFound(t *testing.T) {
	svc := NewContentService(&fakeServiceRepo{}, nil, nil, nil)
	_, err := svc.GetService(404)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestSubmitContactValidation(t *testing.T) {
	svc := NewContentService(nil, nil, nil, &fakeContactRepo{})

	_, err := svc.SubmitContact(&entities.ContactRequest{Name: "A", Phone: "090"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Equal(t, "Vui lòng nhập họ tên, số điện thoại và nội dung liên hệ", err.Error())
}

func TestSubmitContact(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContentService(nil, nil, nil, repo)

	id, err := svc.SubmitContact(&entities.ContactRequest{Name: "A", Phone: "090", Message: "Cần thuê xe"})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Cần thuê xe", repo.created.Message)
}
