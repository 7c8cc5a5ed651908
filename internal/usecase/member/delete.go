package member

import (
	"context"

	"github.com/sportivox/sportivox-api/internal/audit"
	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
)

type DeleteMemberResult struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type DeleteMember struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMember(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteMember {
	return &DeleteMember{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the user record plus every booking and payment carrying
// that email. The three deletes are independent, not one transaction; the
// reported count covers bookings only, and "no data found" is returned only
// when all three deletes matched nothing.
func (uc *DeleteMember) Execute(
	ctx context.Context,
	email string,
) (*DeleteMemberResult, error) {

	userDeleted, err := uc.repo.DeleteUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	bookingDeleted, err := uc.repo.DeleteBookingsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	paymentDeleted, err := uc.repo.DeletePaymentsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if userDeleted == 0 && bookingDeleted == 0 && paymentDeleted == 0 {
		return &DeleteMemberResult{
			Message:      "No data found",
			DeletedCount: 0,
		}, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "member_deleted",
		Entity:   "user",
		EntityID: &email,
		Metadata: map[string]any{
			"bookingsDeleted": bookingDeleted,
			"paymentsDeleted": paymentDeleted,
		},
	})

	return &DeleteMemberResult{
		Message:      "Deleted successfully",
		DeletedCount: bookingDeleted,
	}, nil
}
