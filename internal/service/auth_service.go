package service

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

type LoginResult struct {
	User      *db.User
	Token     string
	SessionID string
}

// AuthService authenticates admin-panel logins, issues the request token and
// records the session. Sessions are never invalidated here; concurrent
// logins only trigger an alert to the account owner.
type AuthService struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Sender   Sender
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, sender Sender) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Sender: sender}
}

func (s *AuthService) Login(req *entities.LoginRequest, ip, userAgent string) (*LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrValidation("Vui lòng nhập tên đăng nhập và mật khẩu")
	}

	user, err := s.Users.GetByUsername(req.Username)
	if err != nil {
		log.Printf("Login error for %q: %v", req.Username, err)
		return nil, apperrors.ErrStorage("Lỗi server")
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized("Tên đăng nhập hoặc mật khẩu không đúng")
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden("Tài khoản đã bị vô hiệu hóa")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrUnauthorized("Tên đăng nhập hoặc mật khẩu không đúng")
	}
	if user.Role != "admin" && user.Role != "business" {
		return nil, apperrors.ErrForbidden("Bạn không có quyền truy cập trang quản trị")
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.Printf("Login error for %q: %v", req.Username, err)
		return nil, apperrors.ErrStorage("Lỗi server")
	}

	sessionID, err := s.openSession(user, ip, userAgent)
	if err != nil {
		log.Printf("Login error for %q: %v", req.Username, err)
		return nil, apperrors.ErrStorage("Lỗi server")
	}

	user.Password = ""
	log.Printf("User %s logged in", user.Username)
	return &LoginResult{User: user, Token: token, SessionID: sessionID}, nil
}

func (s *AuthService) issueToken(user *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// openSession reads prior active sessions, inserts the new one and alerts
// the owner when the login was concurrent. The read and the insert are
// separate statements; a simultaneous login on the same account can slip
// between them and at worst both sides get alerted.
func (s *AuthService) openSession(user *db.User, ip, userAgent string) (string, error) {
	prior, err := s.Sessions.ListActiveByUser(user.ID)
	if err != nil {
		return "", err
	}

	session := &db.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.Sessions.Create(session); err != nil {
		return "", err
	}

	if len(prior) > 0 {
		if user.Email == nil || *user.Email == "" {
			log.Printf("Concurrent session for %s detected but no email is registered", user.Username)
			return session.ID, nil
		}
		latest := prior[0]
		s.Sender.SendSessionAlert(*user.Email, entities.SessionAlertData{
			Username:          user.Username,
			NewSessionID:      session.ID,
			IPAddress:         ip,
			UserAgent:         userAgent,
			LoginTime:         session.CreatedAt,
			PriorSessionID:    latest.ID,
			PriorSessionIP:    latest.IPAddress,
			PriorSessionStart: latest.CreatedAt,
			ActiveSessions:    len(prior),
		})
	}
	return session.ID, nil
}
