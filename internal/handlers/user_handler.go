package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	"github.com/corteturno/corteturno/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func (h *UserHandler) List(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var users []models.User
	if err := h.db.Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	tenantID := tenantFromContext(c)

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ? AND tenant_id = ?", userID, tenantID).
		First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "internal_error", "Error interno.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "No se pudo actualizar el usuario.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	tenantID := tenantFromContext(c)
	callerID := userFromContext(c)

	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	// Nadie se borra a sí mismo desde esta ruta.
	if uint(userID) == callerID {
		httperr.Forbidden(c, "cannot_delete_self", "No puedes eliminar tu propia cuenta.")
		return
	}

	res := h.db.Where("id = ? AND tenant_id = ?", userID, tenantID).
		Delete(&models.User{})
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
