package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/models"
)

type BookingGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.UserEmail != "" {
		q = q.Where("user_email = ?", filter.UserEmail)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	q := r.db.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var b models.Booking
	if err := q.Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) SetBookingApproved(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(domain.StatusApproved))

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) SetBookingPaid(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND payment_status <> ?", id, domain.PaymentPaid).
		Update("payment_status", domain.PaymentPaid)

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// User (promotion)
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *BookingGormRepository) PromoteUserToMember(
	ctx context.Context,
	email string,
	memberDate time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"role":        models.RoleMember,
			"member_date": memberDate,
		})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Member cascade
// --------------------------------------------------

func (r *BookingGormRepository) DeleteUserByEmail(
	ctx context.Context,
	email string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.User{})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) DeleteBookingsByEmail(
	ctx context.Context,
	email string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&models.Booking{})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) DeletePaymentsByEmail(
	ctx context.Context,
	email string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&models.Payment{})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Transaction boundary
// --------------------------------------------------

func (r *BookingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
