package models

import (
	"time"
)

type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerName    string    `json:"customer_name" gorm:"not null"`
	CustomerPhone   string    `json:"customer_phone" gorm:"not null"`
	DeliveryType    string    `json:"delivery_type" gorm:"not null"` // delivery, pickup
	DeliveryAddress *string   `json:"delivery_address" gorm:"check:chk_delivery_address,(delivery_type <> 'delivery') OR (delivery_address IS NOT NULL AND btrim(delivery_address) <> '')"`
	PaymentMethod   string    `json:"payment_method" gorm:"not null"` // cash, card, pix
	ChangeFor       *float64  `json:"change_for" gorm:"check:chk_change_for,(payment_method <> 'cash') OR (change_for IS NOT NULL AND change_for >= total)"`
	Subtotal        float64   `json:"subtotal" gorm:"not null;check:chk_subtotal,subtotal >= 0"`
	DeliveryFee     float64   `json:"delivery_fee" gorm:"not null;check:chk_delivery_fee,delivery_fee >= 0"`
	Total           float64   `json:"total" gorm:"not null;check:chk_total,total >= 0"`
	Status          string    `json:"status" gorm:"default:'pending'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderDone      OrderStatus = "done"
	OrderCancelled OrderStatus = "cancelled"
)

// CreateOrderRequest is the raw cart payload submitted by the storefront.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryType    string             `json:"delivery_type"`
	DeliveryAddress *string            `json:"delivery_address"`
	PaymentMethod   string             `json:"payment_method"`
	ChangeFor       *float64           `json:"change_for"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID   uint                `json:"product_id"`
	ProductName string              `json:"product_name"`
	Quantity    int                 `json:"quantity"`
	BasePrice   float64             `json:"base_price"`
	AddonsTotal float64             `json:"addons_total"`
	FinalPrice  float64             `json:"final_price"`
	Addons      []OrderAddonRequest `json:"addons"`
}

type OrderAddonRequest struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
