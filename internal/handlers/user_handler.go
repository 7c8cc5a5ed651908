package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportivox/sportivox-api/internal/audit"
	"github.com/sportivox/sportivox-api/internal/httperr"
	"github.com/sportivox/sportivox-api/internal/httpresp"
	"github.com/sportivox/sportivox-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// --------- Handlers ---------

// Create syncs a user profile: an existing email returns the stored record
// unchanged, anything else is inserted with the default role.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_input", "Name and email required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&existing).Error
	if err == nil {
		httpresp.OK(c, existing)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("user lookup error: %v", err)
		httperr.Internal(c, "failed_to_create_user", "Internal Server Error")
		return
	}

	role := req.Role
	if !models.ValidRole(role) {
		role = models.RoleUser
	}

	user := models.User{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: email,
		Role:  role,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		log.Printf("user create error: %v", err)
		httperr.Internal(c, "failed_to_create_user", "Internal Server Error")
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.User{})

	if email := c.Query("email"); email != "" {
		q = q.Where("email = ?", email)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		log.Printf("user list error: %v", err)
		httperr.Internal(c, "failed_to_list_users", "Internal Server Error")
		return
	}

	httpresp.OK(c, users)
}

// UpdateRole accepts exactly user, member or admin; anything else is
// rejected before touching storage.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	email := c.Param("email")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_input", "Invalid role")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("role", req.Role)
	if res.Error != nil {
		log.Printf("role update error: %v", res.Error)
		httperr.Internal(c, "failed_to_update_role", "Internal Server Error")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "role_changed",
		Entity:   "user",
		EntityID: &email,
		Metadata: map[string]any{"role": req.Role},
	})

	httpresp.OK(c, gin.H{
		"modifiedCount": res.RowsAffected,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	email := c.Param("email")

	res := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		Delete(&models.User{})
	if res.Error != nil {
		log.Printf("user delete error: %v", res.Error)
		httperr.Internal(c, "failed_to_delete_user", "Internal Server Error")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedCount": res.RowsAffected,
	})
}
