package controllers

import (
	"net/http"
	"time"

	"stockguard/global"
)

type HTTPController struct{}

func NewHTTPController() *HTTPController { return &HTTPController{} }

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Env    string    `json:"env"`
}

// Health is the unauthenticated liveness probe.
func (c *HTTPController) Health(w http.ResponseWriter, r *http.Request) {
	env := ""
	if global.Config != nil {
		env = global.Config.Env
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: time.Now(), Env: env})
}
