package services

import "stockguard/app/models"

// Actor is the resolved identity of the caller, attached by the auth
// middleware and passed explicitly down the call chain.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }
