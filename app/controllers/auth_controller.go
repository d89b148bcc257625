package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"stockguard/app/apperr"
	"stockguard/app/dto"
	jwtutil "stockguard/app/jwt"
	"stockguard/app/services"
)

// SessionRevoker invalidates a token id for the rest of its lifetime.
// Satisfied by session.Store.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthController struct {
	Users    *services.UserService
	Signer   *jwtutil.Signer
	Sessions SessionRevoker
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer, sessions SessionRevoker) *AuthController {
	return &AuthController{Users: users, Signer: signer, Sessions: sessions}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.StaffID == "" || req.Password == "" {
		writeError(w, apperr.ErrValidation)
		return
	}
	u, err := c.Users.Authenticate(req.StaffID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.StaffID, u.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserIdentity{StaffID: u.StaffID, Role: u.Role},
	})
}

// Logout revokes the presented token for its remaining lifetime.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	claims, err := c.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		writeError(w, apperr.ErrBadCredential)
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := c.Sessions.Revoke(r.Context(), claims.ID, ttl); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetBegin always answers 202 so staff ids cannot be enumerated. The
// reset token reaches the user out of band; it is never in this response.
func (c *AuthController) ResetBegin(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.StaffID == "" {
		writeError(w, apperr.ErrValidation)
		return
	}
	if _, err := c.Users.BeginPasswordReset(req.StaffID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (c *AuthController) ResetConfirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetConfirmRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.CompletePasswordReset(req.Token, req.Password); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
