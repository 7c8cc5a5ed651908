package member_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/models"
	ucmember "github.com/sportivox/sportivox-api/internal/usecase/member"
	"github.com/sportivox/sportivox-api/test/mocks"
)

func seedBooking(repo *mocks.MockBookingRepository, email, name, status, paymentStatus string) {
	repo.SeedBooking(models.Booking{
		ID:            uuid.New(),
		UserEmail:     email,
		UserName:      name,
		CourtID:       uuid.New(),
		Date:          "2024-01-01",
		Status:        status,
		PaymentStatus: paymentStatus,
	})
}

func memberSet(members []ucmember.Member) map[string]string {
	set := make(map[string]string, len(members))
	for _, m := range members {
		set[m.UserEmail] = m.UserName
	}
	return set
}

func TestListMembers_OnlyApprovedAndPaid(t *testing.T) {
	repo := mocks.NewMockBookingRepository()

	seedBooking(repo, "paid@x.com", "Paid", string(domain.StatusApproved), domain.PaymentPaid)
	seedBooking(repo, "unpaid@x.com", "Unpaid", string(domain.StatusApproved), "")
	seedBooking(repo, "pending@x.com", "Pending", string(domain.StatusPending), domain.PaymentPaid)

	uc := ucmember.NewListMembers(repo)
	members, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := memberSet(members)
	if len(set) != 1 {
		t.Fatalf("expected exactly 1 member, got %v", set)
	}
	if _, ok := set["paid@x.com"]; !ok {
		t.Error("approved+paid booking must yield a member")
	}
	if _, ok := set["unpaid@x.com"]; ok {
		t.Error("an approved-but-unpaid booking must never appear")
	}
}

func TestListMembers_DeduplicatesByEmail(t *testing.T) {
	repo := mocks.NewMockBookingRepository()

	seedBooking(repo, "a@x.com", "First Name", string(domain.StatusApproved), domain.PaymentPaid)
	seedBooking(repo, "a@x.com", "Second Name", string(domain.StatusApproved), domain.PaymentPaid)
	seedBooking(repo, "b@x.com", "Bob", string(domain.StatusApproved), domain.PaymentPaid)

	uc := ucmember.NewListMembers(repo)
	members, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(members) != 2 {
		t.Fatalf("expected 2 distinct members, got %d", len(members))
	}

	set := memberSet(members)
	if set["a@x.com"] != "First Name" {
		t.Errorf("first-seen display name must win, got %q", set["a@x.com"])
	}
}

func TestListMembers_Empty(t *testing.T) {
	repo := mocks.NewMockBookingRepository()

	uc := ucmember.NewListMembers(repo)
	members, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if members == nil {
		t.Error("expected an empty slice, not nil")
	}
	if len(members) != 0 {
		t.Errorf("expected no members, got %d", len(members))
	}
}

func TestDeleteMember_CascadesAllCollections(t *testing.T) {
	repo := mocks.NewMockBookingRepository()
	repo.SeedUser(models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleMember})
	seedBooking(repo, "a@x.com", "Alice", string(domain.StatusApproved), domain.PaymentPaid)
	seedBooking(repo, "a@x.com", "Alice", string(domain.StatusPending), "")
	repo.SeedPayment(models.Payment{ID: uuid.New(), UserEmail: "a@x.com", Amount: 2500})

	deleteUC := ucmember.NewDeleteMember(repo, nil)
	res, err := deleteUC.Execute(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Message != "Deleted successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	// The reported count covers bookings only.
	if res.DeletedCount != 2 {
		t.Errorf("expected deletedCount 2, got %d", res.DeletedCount)
	}

	if _, ok := repo.Users["a@x.com"]; ok {
		t.Error("user record should be gone")
	}
	if len(repo.Bookings) != 0 {
		t.Error("bookings should be gone")
	}
	if len(repo.Payments) != 0 {
		t.Error("payments should be gone")
	}

	listUC := ucmember.NewListMembers(repo)
	members, err := listUC.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 0 {
		t.Error("deleted member must not reappear in the member list")
	}
}

func TestDeleteMember_PartialDataStillSucceeds(t *testing.T) {
	// Only a payment row exists: success is still reported, with the
	// booking count at zero.
	repo := mocks.NewMockBookingRepository()
	repo.SeedPayment(models.Payment{ID: uuid.New(), UserEmail: "a@x.com", Amount: 100})

	uc := ucmember.NewDeleteMember(repo, nil)
	res, err := uc.Execute(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Message != "Deleted successfully" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.DeletedCount != 0 {
		t.Errorf("expected deletedCount 0, got %d", res.DeletedCount)
	}
}

func TestDeleteMember_NoData(t *testing.T) {
	repo := mocks.NewMockBookingRepository()

	uc := ucmember.NewDeleteMember(repo, nil)
	res, err := uc.Execute(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Message != "No data found" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.DeletedCount != 0 {
		t.Errorf("expected deletedCount 0, got %d", res.DeletedCount)
	}
}
