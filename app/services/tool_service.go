package services

import (
	"fmt"

	"stockguard/app/apperr"
	"stockguard/app/models"
	"stockguard/app/repo"
)

const (
	EventToolCreated = "tool:created"
	EventToolUpdated = "tool:updated"
	EventToolDeleted = "tool:deleted"
)

type ToolService struct {
	tools    *repo.ToolRepository
	notifier Notifier
}

func NewToolService(tools *repo.ToolRepository, notifier Notifier) *ToolService {
	return &ToolService{tools: tools, notifier: notifier}
}

func (s *ToolService) Create(actor Actor, t *models.Tool) error {
	if t.Name == "" {
		return fmt.Errorf("name required: %w", apperr.ErrValidation)
	}
	if !actor.IsAdmin() || t.UserID == 0 {
		t.UserID = actor.UserID
	}
	if t.Status == "" {
		t.Status = "available"
	}
	if err := s.tools.Create(t); err != nil {
		return err
	}
	s.notifier.Publish(EventToolCreated, t)
	return nil
}

func (s *ToolService) List(actor Actor, f repo.ListFilter) ([]models.Tool, error) {
	if !actor.IsAdmin() {
		f.OwnerID = actor.UserID
	}
	return s.tools.List(f)
}

func (s *ToolService) Get(actor Actor, id uint) (*models.Tool, error) {
	t, err := s.tools.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && t.UserID != actor.UserID {
		return nil, apperr.ErrForbidden
	}
	return t, nil
}

func (s *ToolService) Update(actor Actor, id uint, fields map[string]interface{}) (*models.Tool, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperr.ErrValidation)
	}
	if _, err := s.Get(actor, id); err != nil {
		return nil, err
	}
	t, err := s.tools.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish(EventToolUpdated, t)
	return t, nil
}

func (s *ToolService) Delete(actor Actor, id uint) error {
	t, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if err := s.tools.Delete(id); err != nil {
		return err
	}
	s.notifier.Publish(EventToolDeleted, map[string]interface{}{"id": t.ID})
	return nil
}
