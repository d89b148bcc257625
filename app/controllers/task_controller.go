package controllers

import (
	"encoding/json"
	"net/http"

	"stockguard/app/dto"
	"stockguard/app/models"
	"stockguard/app/services"
)

type TaskController struct{ Tasks *services.TaskService }

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Tasks.List(actorFrom(r), listFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskCreateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	task := models.Task{UserID: req.UserID, Description: req.Description, Status: req.Status, DueAt: req.DueAt}
	if err := c.Tasks.Create(actorFrom(r), &task); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (c *TaskController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	task, err := c.Tasks.Get(actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.TaskUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	task, err := c.Tasks.Update(actorFrom(r), id, req.Fields())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Tasks.Delete(actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
