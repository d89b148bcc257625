package services

import (
	"fmt"

	"stockguard/app/apperr"
	"stockguard/app/models"
	"stockguard/app/repo"
)

const (
	EventTaskCreated = "task:created"
	EventTaskUpdated = "task:updated"
	EventTaskDeleted = "task:deleted"
)

type TaskService struct {
	tasks    *repo.TaskRepository
	notifier Notifier
}

func NewTaskService(tasks *repo.TaskRepository, notifier Notifier) *TaskService {
	return &TaskService{tasks: tasks, notifier: notifier}
}

func (s *TaskService) Create(actor Actor, t *models.Task) error {
	if t.Description == "" {
		return fmt.Errorf("description required: %w", apperr.ErrValidation)
	}
	// Tasks default to self-assignment; admins may assign to anyone.
	if !actor.IsAdmin() || t.UserID == 0 {
		t.UserID = actor.UserID
	}
	if t.Status == "" {
		t.Status = "open"
	}
	if err := s.tasks.Create(t); err != nil {
		return err
	}
	s.notifier.Publish(EventTaskCreated, t)
	return nil
}

func (s *TaskService) List(actor Actor, f repo.ListFilter) ([]models.Task, error) {
	if !actor.IsAdmin() {
		f.OwnerID = actor.UserID
	}
	return s.tasks.List(f)
}

func (s *TaskService) Get(actor Actor, id uint) (*models.Task, error) {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && t.UserID != actor.UserID {
		return nil, apperr.ErrForbidden
	}
	return t, nil
}

func (s *TaskService) Update(actor Actor, id uint, fields map[string]interface{}) (*models.Task, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperr.ErrValidation)
	}
	if _, err := s.Get(actor, id); err != nil {
		return nil, err
	}
	t, err := s.tasks.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish(EventTaskUpdated, t)
	return t, nil
}

func (s *TaskService) Delete(actor Actor, id uint) error {
	t, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(id); err != nil {
		return err
	}
	s.notifier.Publish(EventTaskDeleted, map[string]interface{}{"id": t.ID})
	return nil
}
