package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/models"
)

type AnnouncementHandler struct {
	db *gorm.DB
}

func NewAnnouncementHandler(db *gorm.DB) *AnnouncementHandler {
	return &AnnouncementHandler{db: db}
}

type AnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	var list []models.Announcement
	if err := h.db.WithContext(c.Request.Context()).
		Order("date DESC").
		Find(&list).Error; err != nil {

		log.Printf("announcement list error: %v", err)
		httperr.Internal(c, "failed_to_list_announcements", "Internal Server Error")
		return
	}

	httpresp.OK(c, list)
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Title required")
		return
	}

	a := models.Announcement{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Date:        time.Now().UTC(),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&a).Error; err != nil {
		log.Printf("announcement create error: %v", err)
		httperr.Internal(c, "failed_to_create_announcement", "Internal Server Error")
		return
	}

	httpresp.Created(c, a)
}

// Update touches title and description only; the creation date is
// server-assigned and immutable.
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid announcement id")
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Title required")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Announcement{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       req.Title,
			"description": req.Description,
		})
	if res.Error != nil {
		log.Printf("announcement update error: %v", res.Error)
		httperr.Internal(c, "failed_to_update_announcement", "Internal Server Error")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "announcement_not_found", "Announcement not found")
		return
	}

	httpresp.OK(c, gin.H{
		"modifiedCount": res.RowsAffected,
	})
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Invalid announcement id")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		Delete(&models.Announcement{})
	if res.Error != nil {
		log.Printf("announcement delete error: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_announcement", "Internal Server Error")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedCount": res.RowsAffected,
	})
}
