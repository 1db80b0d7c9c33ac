package models

import (
	"time"
)

// StoreSettings is a singleton row owned by the admin/config subsystem.
// Order placement reads MaxAddons and DeliveryFee from it.
type StoreSettings struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoreName   string    `json:"store_name"`
	MaxAddons   int       `json:"max_addons" gorm:"not null;default:3"`
	DeliveryFee float64   `json:"delivery_fee" gorm:"not null;default:0"`
	IsOpen      bool      `json:"is_open" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
