package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	"github.com/corteturno/corteturno/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type UpdateServiceRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Duration *int     `json:"duration"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var services []models.Service
	if err := h.db.Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	service := models.Service{
		TenantID:    tenantID,
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.Duration,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "No se pudo crear el servicio.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	tenantID := tenantFromContext(c)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var service models.Service
	if err := h.db.Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.DurationMin = *req.Duration
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "No se pudo actualizar el servicio.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	tenantID := tenantFromContext(c)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	res := h.db.Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
