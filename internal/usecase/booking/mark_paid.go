package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportivox/sportivox-api/internal/audit"
	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
)

type MarkBookingPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkBookingPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkBookingPaid {
	return &MarkBookingPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute unconditionally sets the payment status to paid. Marking an
// already-paid booking is a no-op and reports zero modifications.
func (uc *MarkBookingPaid) Execute(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	modified, err := uc.repo.SetBookingPaid(ctx, id)
	if err != nil {
		return 0, err
	}

	if modified > 0 {
		idStr := id.String()
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_paid",
			Entity:   "booking",
			EntityID: &idStr,
		})
	}

	return modified, nil
}
