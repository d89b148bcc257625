package controllers

import (
	"encoding/json"
	"net/http"

	"stockguard/app/dto"
	"stockguard/app/models"
	"stockguard/app/services"
)

type ToolController struct{ Tools *services.ToolService }

func NewToolController(tools *services.ToolService) *ToolController {
	return &ToolController{Tools: tools}
}

func (c *ToolController) List(w http.ResponseWriter, r *http.Request) {
	tools, err := c.Tools.List(actorFrom(r), listFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (c *ToolController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ToolCreateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	tool := models.Tool{UserID: req.UserID, Name: req.Name, Status: req.Status, Location: req.Location}
	if err := c.Tools.Create(actorFrom(r), &tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (c *ToolController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tool, err := c.Tools.Get(actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (c *ToolController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.ToolUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	tool, err := c.Tools.Update(actorFrom(r), id, req.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (c *ToolController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Tools.Delete(actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
