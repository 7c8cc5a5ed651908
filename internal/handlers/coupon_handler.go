package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/cache"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/models"
)

type CouponHandler struct {
	db    *gorm.DB
	cache *cache.CouponCache
}

func NewCouponHandler(db *gorm.DB, cache *cache.CouponCache) *CouponHandler {
	return &CouponHandler{db: db, cache: cache}
}

// --------- Requests ---------

type CouponRequest struct {
	Code        string  `json:"code" binding:"required"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Pointer fields: only the supplied ones are applied.
type UpdateCouponRequest struct {
	Code        *string  `json:"code"`
	Type        *string  `json:"type"`
	Value       *float64 `json:"value"`
	Description *string  `json:"description"`
}

// --------- Handlers ---------

// GetByCode is the lookup the checkout flow hits on every coupon entry, so
// it goes through the cache first.
func (h *CouponHandler) GetByCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "invalid_input", "Coupon code required")
		return
	}

	if coupon, ok := h.cache.Get(c.Request.Context(), code); ok {
		httpresp.OK(c, coupon)
		return
	}

	var coupon models.Coupon
	if err := h.db.WithContext(c.Request.Context()).
		Where("code = ?", code).
		First(&coupon).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "coupon_not_found", "Coupon not found")
			return
		}
		log.Printf("coupon lookup error: %v", err)
		httperr.Internal(c, "failed_to_get_coupon", "Internal Server Error")
		return
	}

	h.cache.Set(c.Request.Context(), &coupon)
	httpresp.OK(c, &coupon)
}

func (h *CouponHandler) ListAll(c *gin.Context) {
	var coupons []models.Coupon
	if err := h.db.WithContext(c.Request.Context()).Find(&coupons).Error; err != nil {
		log.Printf("coupon list error: %v", err)
		httperr.Internal(c, "failed_to_list_coupons", "Failed to fetch coupons")
		return
	}

	httpresp.OK(c, coupons)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Coupon code required")
		return
	}

	coupon := models.Coupon{
		ID:          uuid.New(),
		Code:        req.Code,
		Type:        req.Type,
		Value:       req.Value,
		Description: req.Description,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&coupon).Error; err != nil {
		log.Printf("coupon create error: %v", err)
		httperr.Internal(c, "failed_to_create_coupon", "Internal Server Error")
		return
	}

	httpresp.Created(c, coupon)
}

func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid coupon id")
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid coupon data")
		return
	}

	var coupon models.Coupon
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&coupon).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "coupon_not_found", "Coupon not found")
			return
		}
		log.Printf("coupon lookup error: %v", err)
		httperr.Internal(c, "failed_to_update_coupon", "Update failed")
		return
	}

	oldCode := coupon.Code

	if req.Code != nil {
		coupon.Code = *req.Code
	}
	if req.Type != nil {
		coupon.Type = *req.Type
	}
	if req.Value != nil {
		coupon.Value = *req.Value
	}
	if req.Description != nil {
		coupon.Description = *req.Description
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&coupon).Error; err != nil {
		log.Printf("coupon update error: %v", err)
		httperr.Internal(c, "failed_to_update_coupon", "Update failed")
		return
	}

	h.cache.Invalidate(c.Request.Context(), oldCode)
	if coupon.Code != oldCode {
		h.cache.Invalidate(c.Request.Context(), coupon.Code)
	}

	httpresp.OK(c, coupon)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid coupon id")
		return
	}

	var coupon models.Coupon
	err = h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&coupon).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Printf("coupon lookup error: %v", err)
		httperr.Internal(c, "failed_to_delete_coupon", "Internal Server Error")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		Delete(&models.Coupon{})
	if res.Error != nil {
		log.Printf("coupon delete error: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_coupon", "Internal Server Error")
		return
	}

	if coupon.Code != "" {
		h.cache.Invalidate(c.Request.Context(), coupon.Code)
	}

	httpresp.OK(c, gin.H{
		"deletedCount": res.RowsAffected,
	})
}
