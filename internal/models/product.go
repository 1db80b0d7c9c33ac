package models

import (
	"time"
)

type Product struct {
	ID           uint                `json:"id" gorm:"primaryKey"`
	CategoryID   uint                `json:"category_id" gorm:"not null;index"`
	Name         string              `json:"name" gorm:"not null"`
	Description  string              `json:"description" gorm:"type:text"`
	Price        float64             `json:"price" gorm:"not null;check:chk_price,price >= 0"`
	ImageURL     string              `json:"image_url"`
	DisplayOrder int                 `json:"display_order" gorm:"default:0"`
	IsActive     bool                `json:"is_active" gorm:"default:true"`
	Ingredients  []ProductIngredient `json:"ingredients" gorm:"foreignKey:ProductID"`
	Addons       []ProductAddon      `json:"addons" gorm:"foreignKey:ProductID"`
	Flavors      []ProductFlavor     `json:"flavors" gorm:"foreignKey:ProductID"`
	Sizes        []ProductSize       `json:"sizes" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// UpdateProductRequest is the payload of the deep product update: header
// fields plus full replacement of every nested collection.
type UpdateProductRequest struct {
	CategoryID   uint                `json:"category_id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Price        float64             `json:"price"`
	ImageURL     string              `json:"image_url"`
	DisplayOrder int                 `json:"display_order"`
	IsActive     *bool               `json:"is_active"`
	Ingredients  []ProductIngredient `json:"ingredients"`
	Addons       []ProductAddon      `json:"addons"`
	Flavors      []ProductFlavor     `json:"flavors"`
	Sizes        []ProductSize       `json:"sizes"`
}

type ProductIngredient struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"not null"`
	Removable bool   `json:"removable" gorm:"default:true"`
}

type ProductAddon struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null;default:0"`
}

type ProductFlavor struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null;default:0"`
}

type ProductSize struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null;default:0"`
}
