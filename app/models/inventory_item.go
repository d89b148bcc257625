package models

import "time"

type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProductType string    `gorm:"size:191;not null" json:"product_type"`
	Status      string    `gorm:"size:32;not null;default:active" json:"status"`
	Size        string    `gorm:"size:64" json:"size"`
	SerialNo    string    `gorm:"uniqueIndex;size:120;not null" json:"serial_no"`
	Date        time.Time `json:"date"`
	Location    string    `gorm:"size:191" json:"location"`
	Issuer      string    `gorm:"size:191" json:"issuer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
