package repo

import (
	"errors"

	"stockguard/app/apperr"
	"stockguard/app/models"

	"gorm.io/gorm"
)

type ToolRepository struct{ db *gorm.DB }

func NewToolRepository(db *gorm.DB) *ToolRepository { return &ToolRepository{db: db} }

func (r *ToolRepository) Create(t *models.Tool) error { return r.db.Create(t).Error }

func (r *ToolRepository) List(f ListFilter) ([]models.Tool, error) {
	var tools []models.Tool
	err := f.apply(r.db.Model(&models.Tool{})).Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) FindByID(id uint) (*models.Tool, error) {
	var t models.Tool
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ToolRepository) Update(id uint, fields map[string]interface{}) (*models.Tool, error) {
	if err := r.db.Model(&models.Tool{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ToolRepository) Delete(id uint) error {
	tx := r.db.Delete(&models.Tool{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
