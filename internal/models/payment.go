package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment rows are append-only; nothing in the API mutates them.
type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserEmail string     `gorm:"size:100;index;not null" json:"userEmail"`
	BookingID *uuid.UUID `gorm:"type:uuid" json:"bookingId,omitempty"`

	// Amount is in the smallest currency unit, matching the intent request.
	Amount        int64  `json:"amount"`
	TransactionID string `gorm:"size:100" json:"transactionId,omitempty"`
	Method        string `gorm:"size:50" json:"method,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
