package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stockguard/app/dto"
	"stockguard/app/models"
	"stockguard/app/services"
)

type AdminController struct{ Users *services.UserService }

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func userResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID: u.ID, StaffID: u.StaffID, DisplayName: u.DisplayName, Email: u.Email,
		Role: u.Role, LastLoginAt: u.LastLoginAt, DisabledAt: u.DisabledAt, CreatedAt: u.CreatedAt,
	}
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))
	users, err := c.Users.ListUsers(page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.CreateUser(req.StaffID, req.Password, req.DisplayName, req.Email, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userResponse(*u))
}

func (c *AdminController) DisableUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Users.DisableUser(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
