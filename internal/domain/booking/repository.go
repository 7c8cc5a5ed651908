package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sportivox/sportivox-api/internal/models"
)

// ListFilter is a conjunction of exact-match constraints; empty fields are
// unconstrained.
type ListFilter struct {
	Status        string
	PaymentStatus string
	UserEmail     string
}

type Repository interface {
	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	// GetBookingForUpdate reads a booking with a row lock when called
	// inside InTransaction. Returns (nil, nil) when absent.
	GetBookingForUpdate(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		id uuid.UUID,
	) (int64, error)

	SetBookingApproved(
		ctx context.Context,
		id uuid.UUID,
	) (int64, error)

	SetBookingPaid(
		ctx context.Context,
		id uuid.UUID,
	) (int64, error)

	// -------- User (promotion) --------

	// GetUserByEmail returns (nil, nil) when no user record exists.
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	PromoteUserToMember(
		ctx context.Context,
		email string,
		memberDate time.Time,
	) (int64, error)

	// -------- Member cascade --------
	DeleteUserByEmail(
		ctx context.Context,
		email string,
	) (int64, error)

	DeleteBookingsByEmail(
		ctx context.Context,
		email string,
	) (int64, error)

	DeletePaymentsByEmail(
		ctx context.Context,
		email string,
	) (int64, error)

	// InTransaction runs fn against a repository bound to a single
	// transaction; fn's writes commit together or not at all.
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
