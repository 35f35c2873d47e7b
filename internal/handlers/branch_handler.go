package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/validators"
)

type BranchHandler struct {
	db *gorm.DB
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBranchRequest struct {
	Name       string   `json:"name" binding:"required"`
	WorkDays   []string `json:"work_days" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time" binding:"required"`
	LunchStart string   `json:"lunch_start"`
	LunchEnd   string   `json:"lunch_end"`
	Chairs     int      `json:"chairs" binding:"required,min=1"`
}

type UpdateBranchRequest struct {
	Name       *string   `json:"name"`
	WorkDays   *[]string `json:"work_days"`
	StartTime  *string   `json:"start_time"`
	EndTime    *string   `json:"end_time"`
	LunchStart *string   `json:"lunch_start"`
	LunchEnd   *string   `json:"lunch_end"`
	Chairs     *int      `json:"chairs"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BranchHandler) List(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var branches []models.Branch
	if err := h.db.Preload("Chairs").
		Where("tenant_id = ?", tenantID).
		Order("id").
		Find(&branches).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, branches)
}

func (h *BranchHandler) Create(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := validators.ValidateBranchSchedule(
		req.WorkDays, req.StartTime, req.EndTime, req.LunchStart, req.LunchEnd,
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	branch := models.Branch{
		TenantID:   tenantID,
		Name:       req.Name,
		WorkDays:   req.WorkDays,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		LunchStart: req.LunchStart,
		LunchEnd:   req.LunchEnd,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}
		for i := 1; i <= req.Chairs; i++ {
			if err := tx.Create(&models.Chair{
				BranchID:    branch.ID,
				ChairNumber: i,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "No se pudo crear la sucursal.")
		return
	}

	h.db.Preload("Chairs").First(&branch, branch.ID)
	httpresp.Created(c, branch)
}

func (h *BranchHandler) Update(c *gin.Context) {
	tenantID := tenantFromContext(c)

	branchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var branch models.Branch
	if err := h.db.Where("id = ? AND tenant_id = ?", branchID, tenantID).
		First(&branch).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Sucursal no encontrada.")
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.WorkDays != nil {
		branch.WorkDays = *req.WorkDays
	}
	if req.StartTime != nil {
		branch.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		branch.EndTime = *req.EndTime
	}
	if req.LunchStart != nil {
		branch.LunchStart = *req.LunchStart
	}
	if req.LunchEnd != nil {
		branch.LunchEnd = *req.LunchEnd
	}

	// El horario resultante se valida completo, no solo los campos
	// que vinieron en el request.
	if err := validators.ValidateBranchSchedule(
		branch.WorkDays, branch.StartTime, branch.EndTime,
		branch.LunchStart, branch.LunchEnd,
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	if req.Chairs != nil && *req.Chairs < 1 {
		httperr.BadRequest(c, "validation_error", "La sucursal necesita al menos una silla.")
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&branch).Error; err != nil {
			return err
		}
		if req.Chairs != nil {
			return syncChairCount(tx, branch.ID, *req.Chairs)
		}
		return nil
	})
	if txErr != nil {
		httperr.Internal(c, "internal_error", "No se pudo actualizar la sucursal.")
		return
	}

	h.db.Preload("Chairs").First(&branch, branch.ID)
	httpresp.OK(c, branch)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	tenantID := tenantFromContext(c)

	branchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	res := h.db.Where("id = ? AND tenant_id = ?", branchID, tenantID).
		Delete(&models.Branch{})
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "branch_not_found", "Sucursal no encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// syncChairCount ajusta las sillas de la sucursal al total pedido:
// agrega numeradas al final o elimina desde la de número más alto.
func syncChairCount(tx *gorm.DB, branchID uint, target int) error {
	var chairs []models.Chair
	if err := tx.Where("branch_id = ?", branchID).
		Order("chair_number").
		Find(&chairs).Error; err != nil {
		return err
	}

	for i := len(chairs); i < target; i++ {
		if err := tx.Create(&models.Chair{
			BranchID:    branchID,
			ChairNumber: i + 1,
		}).Error; err != nil {
			return err
		}
	}

	for i := len(chairs); i > target; i-- {
		if err := tx.Delete(&chairs[i-1]).Error; err != nil {
			return err
		}
	}

	return nil
}
