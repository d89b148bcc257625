package services

import (
	"fmt"

	"stockguard/app/apperr"
	"stockguard/app/models"
	"stockguard/app/repo"
)

// Event names carried over the realtime channel.
const (
	EventInventoryCreated = "inventory:created"
	EventInventoryUpdated = "inventory:updated"
	EventInventoryDeleted = "inventory:deleted"
)

type InventoryService struct {
	items    *repo.InventoryRepository
	notifier Notifier
}

func NewInventoryService(items *repo.InventoryRepository, notifier Notifier) *InventoryService {
	return &InventoryService{items: items, notifier: notifier}
}

func (s *InventoryService) Create(actor Actor, item *models.InventoryItem) error {
	if item.ProductType == "" || item.SerialNo == "" {
		return fmt.Errorf("product_type and serial_no required: %w", apperr.ErrValidation)
	}
	// Staff create rows they own; only admins may assign another owner.
	if !actor.IsAdmin() || item.UserID == 0 {
		item.UserID = actor.UserID
	}
	if item.Status == "" {
		item.Status = "active"
	}
	if err := s.items.Create(item); err != nil {
		return err
	}
	s.notifier.Publish(EventInventoryCreated, item)
	return nil
}

func (s *InventoryService) List(actor Actor, f repo.ListFilter) ([]models.InventoryItem, error) {
	if !actor.IsAdmin() {
		f.OwnerID = actor.UserID
	}
	return s.items.List(f)
}

func (s *InventoryService) Get(actor Actor, id uint) (*models.InventoryItem, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && item.UserID != actor.UserID {
		return nil, apperr.ErrForbidden
	}
	return item, nil
}

func (s *InventoryService) Update(actor Actor, id uint, fields map[string]interface{}) (*models.InventoryItem, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", apperr.ErrValidation)
	}
	if _, err := s.Get(actor, id); err != nil {
		return nil, err
	}
	item, err := s.items.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish(EventInventoryUpdated, item)
	return item, nil
}

func (s *InventoryService) Delete(actor Actor, id uint) error {
	item, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(id); err != nil {
		return err
	}
	s.notifier.Publish(EventInventoryDeleted, map[string]interface{}{"id": item.ID})
	return nil
}
