package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/models"
)

type CourtHandler struct {
	db *gorm.DB
}

func NewCourtHandler(db *gorm.DB) *CourtHandler {
	return &CourtHandler{db: db}
}

// --------- Requests ---------

type CourtRequest struct {
	Name  string   `json:"name" binding:"required"`
	Type  string   `json:"type"`
	Slots []string `json:"slots"`
	Price float64  `json:"price"`
	Image string   `json:"image"`
}

// --------- Handlers ---------

func (h *CourtHandler) List(c *gin.Context) {
	var courts []models.Court
	if err := h.db.WithContext(c.Request.Context()).Find(&courts).Error; err != nil {
		log.Printf("court list error: %v", err)
		httperr.Internal(c, "failed_to_list_courts", "Internal Server Error")
		return
	}

	httpresp.OK(c, courts)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Court name required")
		return
	}

	court := models.Court{
		ID:    uuid.New(),
		Name:  req.Name,
		Type:  req.Type,
		Slots: req.Slots,
		Price: req.Price,
		Image: req.Image,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&court).Error; err != nil {
		log.Printf("court create error: %v", err)
		httperr.Internal(c, "failed_to_create_court", "Internal Server Error")
		return
	}

	httpresp.Created(c, court)
}

func (h *CourtHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid court id")
		return
	}

	var req CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Court name required")
		return
	}

	var court models.Court
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&court).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "court_not_found", "Court not found")
			return
		}
		log.Printf("court lookup error: %v", err)
		httperr.Internal(c, "failed_to_update_court", "Internal Server Error")
		return
	}

	court.Name = req.Name
	court.Type = req.Type
	court.Slots = req.Slots
	court.Price = req.Price
	court.Image = req.Image

	if err := h.db.WithContext(c.Request.Context()).Save(&court).Error; err != nil {
		log.Printf("court update error: %v", err)
		httperr.Internal(c, "failed_to_update_court", "Internal Server Error")
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid court id")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		Delete(&models.Court{})
	if res.Error != nil {
		log.Printf("court delete error: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_court", "Internal Server Error")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedCount": res.RowsAffected,
	})
}
