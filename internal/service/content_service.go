package service

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

// ContentService serves the public catalog: services, vehicles, vehicle
// types, posts and the contact form.
type ContentService struct {
	Services repository.ServiceRepository
	Vehicles repository.VehicleRepository
	Posts    repository.PostRepository
	Contacts repository.ContactRepository
}

func NewContentService(
	services repository.ServiceRepository,
	vehicles repository.VehicleRepository,
	posts repository.PostRepository,
	contacts repository.ContactRepository,
) *ContentService {
	return &ContentService{Services: services, Vehicles: vehicles, Posts: posts, Contacts: contacts}
}

var defaultServiceImages = []string{
	"https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=800",
	"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800",
	"https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?w=800",
	"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800",
	"https://images.unsplash.com/photo-1464219789935-c2d9d9aba644?w=800",
	"https://images.unsplash.com/photo-1527786356703-4b100091cd2c?w=800",
}

var defaultServiceIcons = []string{
	"fa-plane-departure",
	"fa-calendar-check",
	"fa-briefcase",
	"fa-map-marked-alt",
	"fa-calendar-alt",
	"fa-bus",
}

var defaultServiceFeatures = []string{
	"Xe đời mới, chất lượng cao",
	"Tài xế chuyên nghiệp, giàu kinh nghiệm",
	"Giá cả hợp lý, minh bạch",
	"Hỗ trợ 24/7, kể cả ngày lễ",
}

var slugReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "ạ", "a", "ả", "a", "ã", "a",
	"â", "a", "ầ", "a", "ấ", "a", "ậ", "a", "ẩ", "a", "ẫ", "a",
	"ă", "a", "ằ", "a", "ắ", "a", "ặ", "a", "ẳ", "a", "ẵ", "a",
	"è", "e", "é", "e", "ẹ", "e", "ẻ", "e", "ẽ", "e",
	"ê", "e", "ề", "e", "ế", "e", "ệ", "e", "ể", "e", "ễ", "e",
	"đ", "d",
	"ò", "o", "ó", "o", "ọ", "o", "ỏ", "o", "õ", "o",
	"ô", "o", "ồ", "o", "ố", "o", "ộ", "o", "ổ", "o", "ỗ", "o",
	"ơ", "o", "ờ", "o", "ớ", "o", "ợ", "o", "ở", "o", "ỡ", "o",
	"ù", "u", "ú", "u", "ụ", "u", "ủ", "u", "ũ", "u",
	"ư", "u", "ừ", "u", "ứ", "u", "ự", "u", "ử", "u", "ữ", "u",
	"ì", "i", "í", "i", "ị", "i", "ỉ", "i", "ĩ", "i",
	"ỳ", "y", "ý", "y", "ỵ", "y", "ỷ", "y", "ỹ", "y",
)

// Slugify lowercases a Vietnamese display name, folds its diacritics and
// joins words with hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Join(strings.Fields(slug), "-")
	return slugReplacer.Replace(slug)
}

// ListServices returns services in catalog order, decorated for the public
// site: a derived slug plus fallback image, icon and feature bullets keyed
// on list position for rows without curated media.
func (s *ContentService) ListServices() ([]entities.ServiceView, error) {
	rows, err := s.Services.List()
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		return nil, apperrors.ErrStorage("Error fetching services")
	}

	views := make([]entities.ServiceView, 0, len(rows))
	for i, row := range rows {
		view := entities.ServiceView{
			ID:           row.ID,
			Name:         row.Name,
			Slug:         Slugify(row.Name),
			Description:  row.Description,
			Icon:         "fa-car",
			ImageURL:     defaultServiceImages[1],
			Features:     defaultServiceFeatures,
			DisplayOrder: i + 1,
		}
		if i < len(defaultServiceIcons) {
			view.Icon = defaultServiceIcons[i]
		}
		if row.Image != nil && *row.Image != "" {
			view.ImageURL = *row.Image
		} else if i < len(defaultServiceImages) {
			view.ImageURL = defaultServiceImages[i]
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ContentService) GetService(id int) (*db.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound("Service not found")
		}
		log.Printf("Error fetching service %d: %v", id, err)
		return nil, apperrors.ErrStorage("Error fetching service")
	}
	return svc, nil
}

func (s *ContentService) ListVehicles() ([]db.Vehicle, error) {
	vehicles, err := s.Vehicles.List()
	if err != nil {
		log.Printf("Error fetching vehicles: %v", err)
		return nil, apperrors.ErrStorage("Error fetching vehicles")
	}
	return vehicles, nil
}

func (s *ContentService) ListAvailableVehicles() ([]db.Vehicle, error) {
	vehicles, err := s.Vehicles.ListAvailable()
	if err != nil {
		log.Printf("Error fetching available vehicles: %v", err)
		return nil, apperrors.ErrStorage("Error fetching available vehicles")
	}
	return vehicles, nil
}

func (s *ContentService) ListVehicleTypes() ([]db.VehicleType, error) {
	types, err := s.Vehicles.ListTypes()
	if err != nil {
		log.Printf("Error fetching vehicle types: %v", err)
		return nil, apperrors.ErrStorage("Error fetching vehicle types")
	}
	return types, nil
}

func (s *ContentService) GetVehicleTypeBySlug(slug string) (*db.VehicleType, error) {
	vt, err := s.Vehicles.GetTypeBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound("Vehicle type not found")
		}
		log.Printf("Error fetching vehicle type %q: %v", slug, err)
		return nil, apperrors.ErrStorage("Error fetching vehicle type")
	}
	return vt, nil
}

// ListPosts returns the six most recent posts for the public home page.
func (s *ContentService) ListPosts() ([]db.Post, error) {
	posts, err := s.Posts.ListLatest(6)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return nil, apperrors.ErrStorage("Error fetching posts")
	}
	return posts, nil
}

func (s *ContentService) GetPost(id int) (*db.Post, error) {
	post, err := s.Posts.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound("Post not found")
		}
		log.Printf("Error fetching post %d: %v", id, err)
		return nil, apperrors.ErrStorage("Error fetching post")
	}
	return post, nil
}

// SubmitContact records a public contact-form message with status "new".
func (s *ContentService) SubmitContact(req *entities.ContactRequest) (int, error) {
	if req.Name == "" || req.Phone == "" || req.Message == "" {
		return 0, apperrors.ErrValidation("Vui lòng nhập họ tên, số điện thoại và nội dung liên hệ")
	}
	contact := &db.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}
	id, err := s.Contacts.Create(contact)
	if err != nil {
		log.Printf("Error creating contact: %v", err)
		return 0, apperrors.ErrStorage("Lỗi khi gửi liên hệ. Vui lòng thử lại.")
	}
	return id, nil
}
