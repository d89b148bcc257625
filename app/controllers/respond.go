package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stockguard/app/apperr"
	"stockguard/app/middleware"
	"stockguard/app/repo"
	"stockguard/app/services"
	"stockguard/global"
)

// actorFrom builds the caller identity out of the claims the auth
// middleware attached. The middleware guarantees they exist on protected
// routes.
func actorFrom(r *http.Request) services.Actor {
	if c := middleware.GetClaims(r.Context()); c != nil {
		return services.Actor{UserID: c.UserID, Role: c.Role}
	}
	return services.Actor{}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError translates service/repo errors into the HTTP taxonomy. Internal
// faults are logged and never leak their cause outside dev.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, apperr.ErrBadCredential):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
	case errors.Is(err, apperr.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		global.Logger.Error().Err(err).Msg("internal error")
		msg := "internal error"
		if global.Config != nil && global.Config.Env == "dev" {
			msg = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: msg})
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.ErrValidation
	}
	return uint(id), nil
}

func listFilter(r *http.Request) repo.ListFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))
	owner, _ := strconv.ParseUint(q.Get("owner"), 10, 32)
	return repo.ListFilter{OwnerID: uint(owner), Page: page, PageSize: size}
}
