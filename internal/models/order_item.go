package models

import (
	"time"
)

type OrderItem struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrderID        uint      `json:"order_id" gorm:"not null;index"`
	ProductID      uint      `json:"product_id" gorm:"not null"`
	ProductName    string    `json:"product_name" gorm:"not null"` // snapshot at order time
	Quantity       int       `json:"quantity" gorm:"not null;check:chk_quantity,quantity > 0"`
	BasePrice      float64   `json:"base_price" gorm:"not null;check:chk_base_price,base_price >= 0"`
	AddonsTotal    float64   `json:"addons_total" gorm:"not null;default:0"`
	FinalPrice     float64   `json:"final_price" gorm:"not null;check:chk_final_price,final_price >= 0"`
	SelectedAddons string    `json:"selected_addons" gorm:"type:jsonb;default:'[]'"`
	CreatedAt      time.Time `json:"created_at"`
}

// SelectedAddon is one entry of the serialized selected_addons column.
type SelectedAddon struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
