package models

import "time"

type Tool struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:191;not null" json:"name"`
	Status    string    `gorm:"size:32;not null;default:available" json:"status"`
	Location  string    `gorm:"size:191" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
