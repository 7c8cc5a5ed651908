package member

import (
	"context"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
)

// Member is a derived view, never stored: one entry per distinct user with
// at least one approved and paid booking.
type Member struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type ListMembers struct {
	repo domain.Repository
}

func NewListMembers(repo domain.Repository) *ListMembers {
	return &ListMembers{repo: repo}
}

// Execute reduces approved+paid bookings to unique emails. The store's
// return order is preserved and the first-seen display name wins on
// duplicates.
func (uc *ListMembers) Execute(ctx context.Context) ([]Member, error) {

	bookings, err := uc.repo.ListBookings(ctx, domain.ListFilter{
		Status:        string(domain.StatusApproved),
		PaymentStatus: domain.PaymentPaid,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(bookings))
	members := make([]Member, 0, len(bookings))

	for _, b := range bookings {
		if seen[b.UserEmail] {
			continue
		}
		seen[b.UserEmail] = true
		members = append(members, Member{
			UserName:  b.UserName,
			UserEmail: b.UserEmail,
		})
	}

	return members, nil
}
