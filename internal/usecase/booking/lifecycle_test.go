package booking_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/models"
	ucbooking "github.com/sportivox/sportivox-api/internal/usecase/booking"
	"github.com/sportivox/sportivox-api/test/mocks"
)

func TestCancelBooking(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	id := seedPendingBooking(repo, "a@x.com")

	uc := ucbooking.NewCancelBooking(repo, nil)

	deleted, err := uc.Execute(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected deletedCount 1, got %d", deleted)
	}
	if len(repo.Bookings) != 0 {
		t.Error("booking should be gone after cancellation")
	}

	_, err = uc.Execute(context.Background(), id)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("cancelling twice must report booking_not_found, got %v", err)
	}
}

func TestMarkBookingPaid(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	id := seedPendingBooking(repo, "a@x.com")

	uc := ucbooking.NewMarkBookingPaid(repo, nil)

	modified, err := uc.Execute(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modified != 1 {
		t.Errorf("expected 1 modification, got %d", modified)
	}
	if got := repo.Bookings[0].PaymentStatus; got != domain.PaymentPaid {
		t.Errorf("expected paymentStatus paid, got %q", got)
	}

	// Marking again is a no-op.
	modified, err = uc.Execute(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modified != 0 {
		t.Errorf("second mark must modify nothing, got %d", modified)
	}
}

func TestListBookings_Filters(t *testing.T) {
	repo := mocks.NewMockBookingRepository()

	repo.SeedBooking(models.Booking{
		ID: uuid.New(), UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-01", Status: string(domain.StatusPending),
	})
	repo.SeedBooking(models.Booking{
		ID: uuid.New(), UserEmail: "a@x.com", CourtID: uuid.New(),
		Date: "2024-01-02", Status: string(domain.StatusApproved), PaymentStatus: domain.PaymentPaid,
	})
	repo.SeedBooking(models.Booking{
		ID: uuid.New(), UserEmail: "b@x.com", CourtID: uuid.New(),
		Date: "2024-01-03", Status: string(domain.StatusApproved),
	})

	uc := ucbooking.NewListBookings(repo)

	tests := []struct {
		name   string
		filter domain.ListFilter
		want   int
	}{
		{"unfiltered", domain.ListFilter{}, 3},
		{"by_status", domain.ListFilter{Status: string(domain.StatusApproved)}, 2},
		{"by_email", domain.ListFilter{UserEmail: "a@x.com"}, 2},
		{"conjunction", domain.ListFilter{
			Status:        string(domain.StatusApproved),
			PaymentStatus: domain.PaymentPaid,
			UserEmail:     "a@x.com",
		}, 1},
		{"no_match", domain.ListFilter{Status: string(domain.StatusPending), UserEmail: "b@x.com"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d bookings, got %d", tt.want, len(got))
			}
		})
	}
}
