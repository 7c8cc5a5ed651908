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
// RESULT
// ======================================================

type ApproveResult struct {
	BookingModified int64  `json:"bookingModified"`
	UserModified    int64  `json:"userModified"`
	Message         string `json:"message"`
}

const (
	MsgAlreadyApproved = "Already approved"
	MsgPromoted        = "Booking approved and user promoted to member"
	MsgAdminUnchanged  = "Booking approved (user is admin, role unchanged)"
	MsgUserNotFound    = "Booking approved (user record not found)"
)

// ======================================================
// USE CASE
// ======================================================

// ApproveBooking is the approve-and-promote workflow: the only operation
// whose invariant spans two tables. An approved booking's owner must hold at
// least the member role unless already admin, so the booking update and the
// promotion commit in one transaction.
type ApproveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApproveBooking {
	return &ApproveBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApproveBooking) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*ApproveResult, error) {

	var res ApproveResult

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		// The locked re-read keeps a concurrent second approval from
		// observing stale pending state.
		b, err := tx.GetBookingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return httperr.ErrBusiness("booking_not_found")
		}

		if b.Status == string(domain.StatusApproved) {
			res = ApproveResult{Message: MsgAlreadyApproved}
			return nil
		}

		bookingModified, err := tx.SetBookingApproved(ctx, id)
		if err != nil {
			return err
		}
		res.BookingModified = bookingModified

		user, err := tx.GetUserByEmail(ctx, b.UserEmail)
		if err != nil {
			return err
		}

		switch {
		case user == nil:
			// No user record: approve anyway, skip promotion.
			res.Message = MsgUserNotFound

		case user.Role == models.RoleAdmin:
			res.Message = MsgAdminUnchanged

		default:
			userModified, err := tx.PromoteUserToMember(
				ctx,
				b.UserEmail,
				time.Now().UTC(),
			)
			if err != nil {
				return err
			}
			res.UserModified = userModified
			res.Message = MsgPromoted
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.BookingModified > 0 {
		idStr := id.String()
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_approved",
			Entity:   "booking",
			EntityID: &idStr,
			Metadata: map[string]any{
				"userModified": res.UserModified,
			},
		})
	}

	return &res, nil
}
