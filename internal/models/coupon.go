package models

import (
	"time"

	"github.com/google/uuid"
)

// Coupon codes are treated as unique lookup keys even though the schema
// only indexes them.
type Coupon struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Code        string  `gorm:"size:50;index;not null" json:"code"`
	Type        string  `gorm:"size:20" json:"type"`
	Value       float64 `json:"value"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
