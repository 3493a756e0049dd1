package service

import (
	"log"

	"thaovyxe/internal/db"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

// AdminService carries the back-office CRUD over vehicles, services, posts
// and contacts.
type AdminService struct {
	Vehicles repository.VehicleRepository
	Services repository.ServiceRepository
	Posts    repository.PostRepository
	Contacts repository.ContactRepository
	Stats    repository.StatsRepository
}

func NewAdminService(
	vehicles repository.VehicleRepository,
	services repository.ServiceRepository,
	posts repository.PostRepository,
	contacts repository.ContactRepository,
	stats repository.StatsRepository,
) *AdminService {
	return &AdminService{Vehicles: vehicles, Services: services, Posts: posts, Contacts: contacts, Stats: stats}
}

func (s *AdminService) Dashboard() (interface{}, error) {
	stats, err := s.Stats.Dashboard()
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		return nil, apperrors.ErrStorage("Error fetching statistics")
	}
	return stats, nil
}

func (s *AdminService) CreateVehicle(v *db.Vehicle) (int, error) {
	if v.Status == "" {
		v.Status = "available"
	}
	id, err := s.Vehicles.Create(v)
	if err != nil {
		log.Printf("Error creating vehicle: %v", err)
		return 0, apperrors.ErrStorage("Lỗi khi thêm xe")
	}
	return id, nil
}

func (s *AdminService) UpdateVehicle(id int, v *db.Vehicle) error {
	updated, err := s.Vehicles.Update(id, v)
	if err != nil {
		log.Printf("Error updating vehicle %d: %v", id, err)
		return apperrors.ErrStorage("Lỗi khi cập nhật xe")
	}
	if !updated {
		return apperrors.ErrNotFound("Vehicle not found")
	}
	return nil
}

func (s *AdminService) DeleteVehicle(id int) error {
	deleted, err := s.Vehicles.Delete(id)
	if err != nil {
		log.Printf("Error deleting vehicle %d: %v", id, err)
		return apperrors.ErrStorage("Error deleting vehicle")
	}
	if !deleted {
		return apperrors.ErrNotFound("Vehicle not found")
	}
	return nil
}

func (s *AdminService) ListServices() ([]db.Service, error) {
	services, err := s.Services.ListByCreated()
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		return nil, apperrors.ErrStorage("Error fetching services")
	}
	return services, nil
}

func (s *AdminService) CreateService(svc *db.Service) (int, error) {
	if svc.Name == "" {
		return 0, apperrors.ErrValidation("Vui lòng nhập tên dịch vụ")
	}
	id, err := s.Services.Create(svc)
	if err != nil {
		log.Printf("Error creating service: %v", err)
		return 0, apperrors.ErrStorage("Lỗi khi thêm dịch vụ")
	}
	return id, nil
}

func (s *AdminService) UpdateService(id int, svc *db.Service) error {
	updated, err := s.Services.Update(id, svc)
	if err != nil {
		log.Printf("Error updating service %d: %v", id, err)
		return apperrors.ErrStorage("Lỗi khi cập nhật dịch vụ")
	}
	if !updated {
		return apperrors.ErrNotFound("Service not found")
	}
	return nil
}

func (s *AdminService) DeleteService(id int) error {
	deleted, err := s.Services.Delete(id)
	if err != nil {
		log.Printf("Error deleting service %d: %v", id, err)
		return apperrors.ErrStorage("Error deleting service")
	}
	if !deleted {
		return apperrors.ErrNotFound("Service not found")
	}
	return nil
}

func (s *AdminService) ListPosts() ([]db.Post, error) {
	posts, err := s.Posts.ListAll()
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return nil, apperrors.ErrStorage("Error fetching posts")
	}
	return posts, nil
}

func (s *AdminService) CreatePost(p *db.Post) (int, error) {
	if p.Title == "" || p.Content == "" {
		return 0, apperrors.ErrValidation("Vui lòng nhập tiêu đề và nội dung bài viết")
	}
	id, err := s.Posts.Create(p)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return 0, apperrors.ErrStorage("Error creating post")
	}
	return id, nil
}

func (s *AdminService) UpdatePost(id int, p *db.Post) error {
	updated, err := s.Posts.Update(id, p)
	if err != nil {
		log.Printf("Error updating post %d: %v", id, err)
		return apperrors.ErrStorage("Error updating post")
	}
	if !updated {
		return apperrors.ErrNotFound("Post not found")
	}
	return nil
}

func (s *AdminService) DeletePost(id int) error {
	deleted, err := s.Posts.Delete(id)
	if err != nil {
		log.Printf("Error deleting post %d: %v", id, err)
		return apperrors.ErrStorage("Error deleting post")
	}
	if !deleted {
		return apperrors.ErrNotFound("Post not found")
	}
	return nil
}

func (s *AdminService) ListContacts() ([]db.Contact, error) {
	contacts, err := s.Contacts.List()
	if err != nil {
		log.Printf("Error fetching contacts: %v", err)
		return nil, apperrors.ErrStorage("Error fetching contacts")
	}
	return contacts, nil
}

func (s *AdminService) UpdateContactStatus(id int, status string) error {
	if status != "new" && status != "replied" {
		return apperrors.ErrValidation("Invalid status. Must be: new or replied")
	}
	updated, err := s.Contacts.UpdateStatus(id, status)
	if err != nil {
		log.Printf("Error updating contact %d: %v", id, err)
		return apperrors.ErrStorage("Error updating contact")
	}
	if !updated {
		return apperrors.ErrNotFound("Contact not found")
	}
	return nil
}

func (s *AdminService) DeleteContact(id int) error {
	deleted, err := s.Contacts.Delete(id)
	if err != nil {
		log.Printf("Error deleting contact %d: %v", id, err)
		return apperrors.ErrStorage("Error deleting contact")
	}
	if !deleted {
		return apperrors.ErrNotFound("Contact not found")
	}
	return nil
}
