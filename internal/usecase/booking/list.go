package booking

import (
	"context"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking matching the conjunction of the supplied
// filters. No pagination; the full result set is returned.
func (uc *ListBookings) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, filter)
}
