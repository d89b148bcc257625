package repo

import (
	"errors"

	"stockguard/app/apperr"
	"stockguard/app/models"

	"gorm.io/gorm"
)

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) Create(t *models.Task) error { return r.db.Create(t).Error }

func (r *TaskRepository) List(f ListFilter) ([]models.Task, error) {
	var tasks []models.Task
	err := f.apply(r.db.Model(&models.Task{})).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(id uint) (*models.Task, error) {
	var t models.Task
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Update(id uint, fields map[string]interface{}) (*models.Task, error) {
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *TaskRepository) Delete(id uint) error {
	tx := r.db.Delete(&models.Task{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
