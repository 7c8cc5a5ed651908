package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportivox/sportivox-api/internal/audit"
	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/httperr"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the booking and returns the deleted count (always 1 on
// success). An unknown id is reported as booking_not_found.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	deleted, err := uc.repo.DeleteBooking(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted == 0 {
		return 0, httperr.ErrBusiness("booking_not_found")
	}

	idStr := id.String()
	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &idStr,
	})

	return deleted, nil
}
