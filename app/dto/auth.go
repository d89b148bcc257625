package dto

type LoginRequest struct {
	StaffID  string `json:"staffId"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserIdentity `json:"user"`
}

type UserIdentity struct {
	StaffID string `json:"staffId"`
	Role    string `json:"role"`
}

type ResetRequest struct {
	StaffID string `json:"staffId"`
}

type ResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
