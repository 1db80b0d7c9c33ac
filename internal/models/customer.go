package models

import (
	"time"
)

type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"not null;uniqueIndex"`
	Street       *string   `json:"street"`
	Number       *string   `json:"number"`
	Neighborhood *string   `json:"neighborhood"`
	Complement   *string   `json:"complement"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
