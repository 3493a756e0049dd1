package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// AccountService wraps the users repository with the account-guard
// invariants: unique usernames, last-admin protection, referential
// protection on delete and the change-password preconditions.
type AccountService struct {
	Repo repository.UserRepository
}

func NewAccountService(repo repository.UserRepository) *AccountService {
	return &AccountService{Repo: repo}
}

func (s *AccountService) List() ([]db.User, error) {
	users, err := s.Repo.List()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return nil, apperrors.ErrStorage("Error fetching users")
	}
	return users, nil
}

func (s *AccountService) Create(req *entities.UserRequest) (int, error) {
	if req.Username == "" || req.Password == "" {
		return 0, apperrors.ErrValidation("Vui lòng nhập tên đăng nhập và mật khẩu")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.ErrStorage("Lỗi khi thêm tài khoản")
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	user := &db.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
	}
	id, err := s.Repo.Create(user)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return 0, apperrors.ErrConflict("Tên đăng nhập đã tồn tại")
		}
		log.Printf("Error creating user: %v", err)
		return 0, apperrors.ErrStorage("Lỗi khi thêm tài khoản")
	}
	return id, nil
}

func (s *AccountService) Update(id int, req *entities.UserRequest) error {
	if req.Username == "" {
		return apperrors.ErrValidation("Vui lòng nhập tên đăng nhập")
	}

	user := &db.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	withPassword := strings.TrimSpace(req.Password) != ""
	if withPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperrors.ErrStorage("Lỗi khi cập nhật tài khoản")
		}
		user.Password = string(hash)
	}

	updated, err := s.Repo.Update(id, user, withPassword)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return apperrors.ErrConflict("Tên đăng nhập đã tồn tại")
		}
		log.Printf("Error updating user %d: %v", id, err)
		return apperrors.ErrStorage("Lỗi khi cập nhật tài khoản")
	}
	if !updated {
		return apperrors.ErrNotFound("User not found")
	}
	return nil
}

// ToggleActive flips the active flag. The last-admin condition lives inside
// the repository's conditional update, so a refused write here means either
// a missing row or the guard; a follow-up read tells the two apart.
func (s *AccountService) ToggleActive(id int) (bool, error) {
	active, err := s.Repo.ToggleActive(id)
	if err == nil {
		return active, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Error toggling user %d status: %v", id, err)
		return false, apperrors.ErrStorage("Lỗi khi thay đổi trạng thái tài khoản")
	}

	user, lookupErr := s.Repo.GetByID(id)
	if lookupErr != nil {
		log.Printf("Error looking up user %d after refused toggle: %v", id, lookupErr)
		return false, apperrors.ErrStorage("Lỗi khi thay đổi trạng thái tài khoản")
	}
	if user == nil {
		return false, apperrors.ErrNotFound("User not found")
	}
	return false, apperrors.ErrPolicy("Không thể vô hiệu hóa tài khoản admin cuối cùng")
}

// Delete refuses when dependent bookings or ratings reference the user, or
// when the user is the last active admin. The FK constraints back the
// pre-count, so a row slipping in between the check and the delete still
// fails safely.
func (s *AccountService) Delete(id int) error {
	bookings, ratings, err := s.Repo.CountDependents(id)
	if err != nil {
		log.Printf("Error counting dependent rows for user %d: %v", id, err)
		return apperrors.ErrStorage("Lỗi khi xóa tài khoản")
	}

	var related []string
	if bookings > 0 {
		related = append(related, fmt.Sprintf("%d đơn đặt xe", bookings))
	}
	if ratings > 0 {
		related = append(related, fmt.Sprintf("%d đánh giá", ratings))
	}
	if len(related) > 0 {
		return apperrors.ErrPolicy(fmt.Sprintf(
			"Không thể xóa tài khoản này vì có dữ liệu liên quan: %s. Hãy vô hiệu hóa tài khoản thay vì xóa.",
			strings.Join(related, ", ")))
	}

	deleted, err := s.Repo.Delete(id)
	if err != nil {
		if table, ok := pqReferencedTable(err); ok {
			return apperrors.ErrPolicy(fmt.Sprintf(
				"Không thể xóa tài khoản này vì có dữ liệu liên quan trong bảng %s. Hãy vô hiệu hóa tài khoản thay vì xóa.",
				table))
		}
		log.Printf("Error deleting user %d: %v", id, err)
		return apperrors.ErrStorage("Lỗi khi xóa tài khoản")
	}
	if deleted {
		return nil
	}

	user, lookupErr := s.Repo.GetByID(id)
	if lookupErr != nil {
		log.Printf("Error looking up user %d after refused delete: %v", id, lookupErr)
		return apperrors.ErrStorage("Lỗi khi xóa tài khoản")
	}
	if user == nil {
		return apperrors.ErrNotFound("User not found")
	}
	return apperrors.ErrPolicy("Không thể xóa tài khoản admin cuối cùng")
}

// ChangePassword applies the five preconditions in order, each with its own
// rejection message: complete input, minimum length, new differs from
// current, account exists and is active, current password verifies.
func (s *AccountService) ChangePassword(req *entities.ChangePasswordRequest) error {
	if req.UserID == 0 || req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.ErrValidation("Thiếu thông tin bắt buộc")
	}
	if len(req.NewPassword) < 6 {
		return apperrors.ErrValidation("Mật khẩu mới phải có ít nhất 6 ký tự")
	}
	if req.NewPassword == req.CurrentPassword {
		return apperrors.ErrValidation("Mật khẩu mới phải khác mật khẩu hiện tại")
	}

	user, err := s.Repo.GetByID(req.UserID)
	if err != nil {
		log.Printf("Error fetching user %d for password change: %v", req.UserID, err)
		return apperrors.ErrStorage("Lỗi server khi đổi mật khẩu. Vui lòng thử lại sau.")
	}
	if user == nil {
		return apperrors.ErrNotFound("Không tìm thấy tài khoản")
	}
	if !user.IsActive {
		return apperrors.ErrForbidden("Tài khoản đã bị vô hiệu hóa")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		log.Printf("Failed password change attempt for user %s (ID %d)", user.Username, user.ID)
		return apperrors.ErrUnauthorized("Mật khẩu hiện tại không đúng")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.ErrStorage("Không thể cập nhật mật khẩu")
	}
	updated, err := s.Repo.UpdatePassword(req.UserID, string(hash))
	if err != nil || !updated {
		log.Printf("Error updating password for user %d: %v", req.UserID, err)
		return apperrors.ErrStorage("Không thể cập nhật mật khẩu")
	}

	log.Printf("Password changed for user %s (ID %d, role %s)", user.Username, user.ID, user.Role)
	return nil
}

func isPQCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// pqReferencedTable extracts the referencing table name from a foreign-key
// violation, falling back to a generic label when the driver omits it.
func pqReferencedTable(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pqForeignKeyViolation {
		return "", false
	}
	if pqErr.Table != "" {
		return pqErr.Table, true
	}
	return "dữ liệu", true
}
