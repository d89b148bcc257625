package repo

import (
	"errors"
	"fmt"
	"time"

	"stockguard/app/apperr"
	"stockguard/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("staff id %q: %w", u.StaffID, apperr.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByStaffID(staffID string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("staff_id = ?", staffID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByResetToken(token string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("reset_token = ?", token).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(page, pageSize int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByStaffID(staffID string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("staff_id = ?", staffID).Count(&count).Error
}

// TouchLastLogin updates only last_login_at, keyed by id.
func (r *UserRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// Disable soft-disables the user; rows are never hard-deleted.
func (r *UserRepository) Disable(id uint, at time.Time) error {
	tx := r.db.Model(&models.User{}).Where("id = ? AND disabled_at IS NULL", id).Update("disabled_at", at)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetResetToken(id uint, token string, expires time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"reset_token": token, "reset_expires": expires}).Error
}

func (r *UserRepository) SetPassword(id uint, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": hash, "reset_token": "", "reset_expires": nil}).Error
}
