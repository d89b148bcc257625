package repo

import (
	"errors"
	"fmt"

	"stockguard/app/apperr"
	"stockguard/app/models"

	"gorm.io/gorm"
)

// ListFilter narrows List calls. OwnerID zero means all owners.
type ListFilter struct {
	OwnerID  uint
	Page     int
	PageSize int
}

func (f ListFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.OwnerID != 0 {
		tx = tx.Where("user_id = ?", f.OwnerID)
	}
	page, size := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}
	return tx.Order("created_at DESC").Offset((page - 1) * size).Limit(size)
}

type InventoryRepository struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(item *models.InventoryItem) error {
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("serial %q: %w", item.SerialNo, apperr.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *InventoryRepository) List(f ListFilter) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := f.apply(r.db.Model(&models.InventoryItem{})).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update applies a partial column map in a single UPDATE keyed by id; gorm
// refreshes updated_at in the same statement.
func (r *InventoryRepository) Update(id uint, fields map[string]interface{}) (*models.InventoryItem, error) {
	if err := r.db.Model(&models.InventoryItem{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("serial: %w", apperr.ErrConflict)
		}
		return nil, err
	}
	// An unknown id updates zero rows; the lookup below turns that into
	// not-found without ever having mutated anything.
	return r.FindByID(id)
}

func (r *InventoryRepository) Delete(id uint) error {
	tx := r.db.Delete(&models.InventoryItem{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
