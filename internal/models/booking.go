package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserEmail string    `gorm:"size:100;index;not null" json:"userEmail"`
	UserName  string    `gorm:"size:100" json:"userName"`
	CourtID   uuid.UUID `gorm:"type:uuid;not null" json:"courtId"`

	// Date is the requested day in YYYY-MM-DD form, stored as sent.
	Date  string  `gorm:"size:10;not null" json:"date"`
	Slot  string  `gorm:"size:50" json:"slot,omitempty"`
	Price float64 `json:"price,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// PaymentStatus is empty until the booking is paid for.
	PaymentStatus string `gorm:"size:20" json:"paymentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
