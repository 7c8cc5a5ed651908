package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/httperr"
	ucbooking "github.com/sportivox/sportivox-api/internal/usecase/booking"
	"github.com/sportivox/sportivox-api/test/mocks"
)

func TestCreateBooking_Validation(t *testing.T) {
	courtID := uuid.New()

	tests := []struct {
		name  string
		input ucbooking.CreateBookingInput
	}{
		{
			name: "missing_user_email",
			input: ucbooking.CreateBookingInput{
				CourtID: courtID,
				Date:    "2024-01-01",
			},
		},
		{
			name: "missing_court_id",
			input: ucbooking.CreateBookingInput{
				UserEmail: "a@x.com",
				Date:      "2024-01-01",
			},
		},
		{
			name: "missing_date",
			input: ucbooking.CreateBookingInput{
				UserEmail: "a@x.com",
				CourtID:   courtID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBookingRepository()
			uc := ucbooking.NewCreateBooking(repo, nil)

			_, err := uc.Execute(context.Background(), tt.input)

			if !httperr.IsBusiness(err, "invalid_input") {
				t.Fatalf("expected invalid_input, got %v", err)
			}
			if repo.CreateBookingCalls != 0 {
				t.Errorf("validation failure must not write, got %d calls", repo.CreateBookingCalls)
			}
		})
	}
}

func TestCreateBooking_ForcesPendingStatus(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	uc := ucbooking.NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		UserEmail: "a@x.com",
		UserName:  "Alice",
		CourtID:   uuid.New(),
		Date:      "2024-01-01",
		Slot:      "10:00 - 11:00",
		Price:     25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.ID == uuid.Nil {
		t.Error("expected a generated booking id")
	}
	if b.Status != string(domain.StatusPending) {
		t.Errorf("expected status pending, got %q", b.Status)
	}
	if b.PaymentStatus != "" {
		t.Errorf("new booking must have no payment status, got %q", b.PaymentStatus)
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if len(repo.Bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.Bookings))
	}
}

func TestCreateBooking_AllowsDuplicates(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	uc := ucbooking.NewCreateBooking(repo, nil)

	in := ucbooking.CreateBookingInput{
		UserEmail: "a@x.com",
		CourtID:   uuid.New(),
		Date:      "2024-01-01",
	}

	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Fatalf("unexpected error on attempt %d: %v", i+1, err)
		}
	}

	if len(repo.Bookings) != 2 {
		t.Errorf("same user/court/date may be booked twice, got %d bookings", len(repo.Bookings))
	}
}

func TestCreateBooking_StoreError(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	repo.CreateBookingError = errors.New("connection reset")
	uc := ucbooking.NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		UserEmail: "a@x.com",
		CourtID:   uuid.New(),
		Date:      "2024-01-01",
	})
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	if httperr.IsBusiness(err, "invalid_input") {
		t.Error("store error must not be reported as invalid input")
	}
}
