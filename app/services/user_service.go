package services

import (
	"fmt"
	"time"

	"stockguard/app/apperr"
	"stockguard/app/models"
	"stockguard/app/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin seeds the bootstrap admin account if it does not exist yet.
func (s *UserService) EnsureAdmin(staffID, password string) error {
	count, err := s.users.CountByStaffID(staffID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{StaffID: staffID, PasswordHash: string(hash), DisplayName: "Administrator", Role: models.RoleAdmin})
}

func (s *UserService) CreateUser(staffID, password, name, email, role string) (*models.User, error) {
	if staffID == "" || password == "" {
		return nil, fmt.Errorf("staff id and password required: %w", apperr.ErrValidation)
	}
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("role %q: %w", role, apperr.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{StaffID: staffID, PasswordHash: string(hash), DisplayName: name, Email: email, Role: role}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies a staff id / password pair. Unknown staff ids and
// wrong passwords return the same error so callers cannot enumerate
// accounts. A successful login stamps last_login_at.
func (s *UserService) Authenticate(staffID, password string) (*models.User, error) {
	u, err := s.users.FindByStaffID(staffID)
	if err != nil {
		// Burn a hash comparison anyway so the timing of the two failure
		// paths stays comparable.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000uGZwC1cphz9nTpdC7R3b1gxBlRplm0S"), []byte(password))
		return nil, apperr.ErrBadCredential
	}
	if u.DisabledAt != nil {
		return nil, apperr.ErrBadCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrBadCredential
	}
	now := time.Now()
	if err := s.users.TouchLastLogin(u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginAt = &now
	return u, nil
}

func (s *UserService) ListUsers(page, pageSize int) ([]models.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.users.List(page, pageSize)
}

func (s *UserService) DisableUser(id uint) error {
	return s.users.Disable(id, time.Now())
}

// BeginPasswordReset issues a single-use reset token. Unknown staff ids
// succeed silently for the same enumeration reason as Authenticate; the
// returned token is empty in that case.
func (s *UserService) BeginPasswordReset(staffID string) (string, error) {
	u, err := s.users.FindByStaffID(staffID)
	if err != nil {
		return "", nil
	}
	token := uuid.NewString()
	if err := s.users.SetResetToken(u.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) CompletePasswordReset(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("token and password required: %w", apperr.ErrValidation)
	}
	u, err := s.users.FindByResetToken(token)
	if err != nil {
		return apperr.ErrBadCredential
	}
	if u.ResetExpires == nil || time.Now().After(*u.ResetExpires) {
		return apperr.ErrBadCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.SetPassword(u.ID, string(hash))
}
