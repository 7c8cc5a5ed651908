package models

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Date is assigned by the server on creation and never updated.
	Date time.Time `json:"date"`
}
