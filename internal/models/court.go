package models

import (
	"time"

	"github.com/google/uuid"
)

type Court struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string   `gorm:"size:100;not null" json:"name"`
	Type  string   `gorm:"size:50" json:"type"`
	Slots []string `gorm:"serializer:json" json:"slots"`
	Price float64  `json:"price"`
	Image string   `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
