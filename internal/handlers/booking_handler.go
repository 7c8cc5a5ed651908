package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/sportivox/sportivox-api/internal/domain/booking"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	ucbooking "github.com/sportivox/sportivox-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucbooking.CreateBooking
	listUC     *ucbooking.ListBookings
	cancelUC   *ucbooking.CancelBooking
	approveUC  *ucbooking.ApproveBooking
	markPaidUC *ucbooking.MarkBookingPaid
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	listUC *ucbooking.ListBookings,
	cancelUC *ucbooking.CancelBooking,
	approveUC *ucbooking.ApproveBooking,
	markPaidUC *ucbooking.MarkBookingPaid,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		listUC:     listUC,
		cancelUC:   cancelUC,
		approveUC:  approveUC,
		markPaidUC: markPaidUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserEmail string  `json:"userEmail"`
	UserName  string  `json:"userName"`
	CourtID   string  `json:"courtId"`
	Date      string  `json:"date"`
	Slot      string  `json:"slot"`
	Price     float64 `json:"price"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Missing booking data")
		return
	}

	// Required-field validation lives in the use case; the handler only
	// rejects a courtId it cannot parse.
	var courtID uuid.UUID
	if req.CourtID != "" {
		parsed, err := uuid.Parse(req.CourtID)
		if err != nil {
			httperr.BadRequest(c, "invalid_input", "Missing booking data")
			return
		}
		courtID = parsed
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		CourtID:   courtID,
		Date:      req.Date,
		Slot:      req.Slot,
		Price:     req.Price,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_input") {
			httperr.BadRequest(c, "invalid_input", "Missing booking data")
			return
		}
		log.Printf("booking create error: %v", err)
		httperr.Internal(c, "failed_to_create_booking", "Server error")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking created",
		"id":      b.ID,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		UserEmail:     c.Query("email"),
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		log.Printf("booking list error: %v", err)
		httperr.Internal(c, "failed_to_list_bookings", "Internal Server Error")
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid booking id")
		return
	}

	deleted, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found")
			return
		}
		log.Printf("booking cancel error: %v", err)
		httperr.Internal(c, "failed_to_cancel_booking", "Server error")
		return
	}

	httpresp.OK(c, gin.H{
		"message":      "Booking cancelled successfully",
		"deletedCount": deleted,
	})
}

func (h *BookingHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid booking id")
		return
	}

	res, err := h.approveUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found")
			return
		}
		log.Printf("booking approve error: %v", err)
		httperr.Internal(c, "failed_to_approve_booking", "Internal server error")
		return
	}

	httpresp.OK(c, res)
}

func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid booking id")
		return
	}

	modified, err := h.markPaidUC.Execute(c.Request.Context(), id)
	if err != nil {
		log.Printf("booking payment error: %v", err)
		httperr.Internal(c, "failed_to_mark_paid", "Server error")
		return
	}

	httpresp.OK(c, gin.H{
		"modifiedCount": modified,
	})
}
