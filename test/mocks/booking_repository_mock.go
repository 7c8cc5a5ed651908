// Package mocks provides in-memory implementations of the domain ports for
// testing. Tests inject these instead of the GORM adapter, so use cases run
// without a database.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/models"
)

// MockBookingRepository keeps bookings in insertion order so views that
// depend on store return order stay deterministic in tests.
type MockBookingRepository struct {
	mu sync.Mutex

	Bookings []*models.Booking
	Users    map[string]*models.User
	Payments []*models.Payment

	// Call tracking
	CreateBookingCalls int
	SetApprovedCalls   int
	SetPaidCalls       int
	PromoteCalls       []string
	TxCalls            int

	// Error injection
	CreateBookingError error
	ListBookingsError  error
	GetBookingError    error
	DeleteBookingError error
	SetApprovedError   error
	SetPaidError       error
	GetUserError       error
	PromoteError       error
	DeleteUserError    error
	TxError            error
}

var _ domain.Repository = (*MockBookingRepository)(nil)

func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		Users: make(map[string]*models.User),
	}
}

// --------- Seed helpers ---------

func (m *MockBookingRepository) SeedBooking(b models.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := b
	m.Bookings = append(m.Bookings, &copied)
}

func (m *MockBookingRepository) SeedUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := u
	m.Users[u.Email] = &copied
}

func (m *MockBookingRepository) SeedPayment(p models.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := p
	m.Payments = append(m.Payments, &copied)
}

// --------- Booking ---------

func (m *MockBookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateBookingCalls++
	if m.CreateBookingError != nil {
		return m.CreateBookingError
	}

	copied := *b
	m.Bookings = append(m.Bookings, &copied)
	return nil
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListBookingsError != nil {
		return nil, m.ListBookingsError
	}

	var out []models.Booking
	for _, b := range m.Bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.PaymentStatus != "" && b.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.UserEmail != "" && b.UserEmail != filter.UserEmail {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (m *MockBookingRepository) GetBookingForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetBookingError != nil {
		return nil, m.GetBookingError
	}

	for _, b := range m.Bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteBookingError != nil {
		return 0, m.DeleteBookingError
	}

	for i, b := range m.Bookings {
		if b.ID == id {
			m.Bookings = append(m.Bookings[:i], m.Bookings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockBookingRepository) SetBookingApproved(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetApprovedCalls++
	if m.SetApprovedError != nil {
		return 0, m.SetApprovedError
	}

	for _, b := range m.Bookings {
		if b.ID == id {
			b.Status = string(domain.StatusApproved)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockBookingRepository) SetBookingPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetPaidCalls++
	if m.SetPaidError != nil {
		return 0, m.SetPaidError
	}

	for _, b := range m.Bookings {
		if b.ID == id && b.PaymentStatus != domain.PaymentPaid {
			b.PaymentStatus = domain.PaymentPaid
			return 1, nil
		}
	}
	return 0, nil
}

// --------- User ---------

func (m *MockBookingRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetUserError != nil {
		return nil, m.GetUserError
	}

	u, ok := m.Users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *MockBookingRepository) PromoteUserToMember(ctx context.Context, email string, memberDate time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PromoteCalls = append(m.PromoteCalls, email)
	if m.PromoteError != nil {
		return 0, m.PromoteError
	}

	u, ok := m.Users[email]
	if !ok {
		return 0, nil
	}
	u.Role = models.RoleMember
	u.MemberDate = &memberDate
	return 1, nil
}

// --------- Member cascade ---------

func (m *MockBookingRepository) DeleteUserByEmail(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteUserError != nil {
		return 0, m.DeleteUserError
	}

	if _, ok := m.Users[email]; !ok {
		return 0, nil
	}
	delete(m.Users, email)
	return 1, nil
}

func (m *MockBookingRepository) DeleteBookingsByEmail(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []*models.Booking
	var deleted int64
	for _, b := range m.Bookings {
		if b.UserEmail == email {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	m.Bookings = kept
	return deleted, nil
}

func (m *MockBookingRepository) DeletePaymentsByEmail(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept []*models.Payment
	var deleted int64
	for _, p := range m.Payments {
		if p.UserEmail == email {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	m.Payments = kept
	return deleted, nil
}

// --------- Transaction boundary ---------

// InTransaction runs fn against the mock itself. No rollback is simulated;
// tests asserting on partial failures check the error, not the state.
func (m *MockBookingRepository) InTransaction(ctx context.Context, fn func(domain.Repository) error) error {
	m.TxCalls++
	if m.TxError != nil {
		return m.TxError
	}
	return fn(m)
}
