package models

import "time"

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool { return role == RoleStaff || role == RoleAdmin }

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	StaffID      string     `gorm:"uniqueIndex;size:191;not null" json:"staff_id"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	DisplayName  string     `gorm:"size:191" json:"display_name"`
	Email        string     `gorm:"size:191" json:"email"`
	Role         string     `gorm:"size:32;not null;default:staff" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	DisabledAt   *time.Time `json:"disabled_at,omitempty"`
	ResetToken   string     `gorm:"size:64;index" json:"-"`
	ResetExpires *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
