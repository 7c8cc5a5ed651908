package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportivox/sportivox-api/internal/audit"
	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserEmail string
	UserName  string
	CourtID   uuid.UUID
	Date      string
	Slot      string
	Price     float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute persists a new booking. Status is always forced to pending and the
// payment status left empty, regardless of what the caller sent. Duplicate
// bookings for the same user/court/date are allowed.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.UserEmail == "" || in.CourtID == uuid.Nil || in.Date == "" {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	b := &models.Booking{
		ID:        uuid.New(),
		UserEmail: in.UserEmail,
		UserName:  in.UserName,
		CourtID:   in.CourtID,
		Date:      in.Date,
		Slot:      in.Slot,
		Price:     in.Price,
		Status:    string(domain.InitialStatus()),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	id := b.ID.String()
	uc.audit.Dispatch(audit.Event{
		ActorEmail: &b.UserEmail,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &id,
	})

	return b, nil
}
