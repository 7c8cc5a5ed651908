package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/audit"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/models"
	"github.com/sportivox/sportivox-api/internal/payments"
)

type PaymentHandler struct {
	db      *gorm.DB
	gateway payments.Gateway
	audit   *audit.Dispatcher
}

func NewPaymentHandler(
	db *gorm.DB,
	gateway payments.Gateway,
	audit *audit.Dispatcher,
) *PaymentHandler {
	return &PaymentHandler{
		db:      db,
		gateway: gateway,
		audit:   audit,
	}
}

// --------- Requests ---------

type CreateIntentRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

type RecordPaymentRequest struct {
	UserEmail     string  `json:"userEmail" binding:"required"`
	BookingID     *string `json:"bookingId"`
	Amount        int64   `json:"amount"`
	TransactionID string  `json:"transactionId"`
	Method        string  `json:"method"`
}

// --------- Handlers ---------

// CreateIntent asks the payment provider for a new intent and hands the
// client secret back to the frontend. The provider call is the whole
// operation; nothing is stored here.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Amount required")
		return
	}

	secret, err := h.gateway.CreateIntent(c.Request.Context(), req.Amount)
	if err != nil {
		log.Printf("payment intent error: %v", err)
		httperr.Internal(c, "payment_provider_error", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"clientSecret": secret,
	})
}

func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Missing payment data")
		return
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil {
		parsed, err := uuid.Parse(*req.BookingID)
		if err != nil {
			httperr.BadRequest(c, "invalid_input", "Invalid booking id")
			return
		}
		bookingID = &parsed
	}

	payment := models.Payment{
		ID:            uuid.New(),
		UserEmail:     req.UserEmail,
		BookingID:     bookingID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Method:        req.Method,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&payment).Error; err != nil {
		log.Printf("payment record error: %v", err)
		httperr.Internal(c, "failed_to_record_payment", "Internal Server Error")
		return
	}

	id := payment.ID.String()
	h.audit.Dispatch(audit.Event{
		ActorEmail: &payment.UserEmail,
		Action:     "payment_recorded",
		Entity:     "payment",
		EntityID:   &id,
	})

	httpresp.Created(c, gin.H{
		"message": "Payment recorded",
		"id":      payment.ID,
	})
}

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Payment{})

	if email := c.Query("email"); email != "" {
		q = q.Where("user_email = ?", email)
	}

	var list []models.Payment
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		log.Printf("payment list error: %v", err)
		httperr.Internal(c, "failed_to_list_payments", "Failed to fetch payments")
		return
	}

	httpresp.OK(c, list)
}
