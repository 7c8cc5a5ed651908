package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/middleware"
	"github.com/sportivox/sportivox-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found")
			return
		}
		log.Printf("me lookup error: %v", err)
		httperr.Internal(c, "internal_error", "Internal Server Error")
		return
	}

	httpresp.OK(c, user)
}
