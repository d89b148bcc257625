package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"stockguard/app/dto"
	"stockguard/app/models"
	"stockguard/app/services"
)

type InventoryController struct{ Items *services.InventoryService }

func NewInventoryController(items *services.InventoryService) *InventoryController {
	return &InventoryController{Items: items}
}

func (c *InventoryController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.Items.List(actorFrom(r), listFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *InventoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InventoryCreateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	item := models.InventoryItem{
		UserID:      req.UserID,
		ProductType: req.ProductType,
		Status:      req.Status,
		Size:        req.Size,
		SerialNo:    req.SerialNo,
		Location:    req.Location,
		Issuer:      req.Issuer,
	}
	if req.Date != nil {
		item.Date = *req.Date
	} else {
		item.Date = time.Now()
	}
	if err := c.Items.Create(actorFrom(r), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (c *InventoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := c.Items.Get(actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *InventoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.InventoryUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	item, err := c.Items.Update(actorFrom(r), id, req.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (c *InventoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Items.Delete(actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
