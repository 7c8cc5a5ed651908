package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// PaymentPaid is the only payment status a booking ever carries; an empty
// field means the booking is unpaid.
const PaymentPaid = "paid"

// InitialStatus is forced onto every new booking regardless of what the
// client sent.
func InitialStatus() Status {
	return StatusPending
}
