package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/validators"
)

type OnboardingHandler struct {
	db *gorm.DB
}

func NewOnboardingHandler(db *gorm.DB) *OnboardingHandler {
	return &OnboardingHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type OnboardingBranchRequest struct {
	Name       string   `json:"name" binding:"required"`
	WorkDays   []string `json:"work_days" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time" binding:"required"`
	LunchStart string   `json:"lunch_start"`
	LunchEnd   string   `json:"lunch_end"`
	Chairs     int      `json:"chairs" binding:"required,min=1"`
}

type OnboardingServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type CompleteOnboardingRequest struct {
	ShopName string                     `json:"shop_name" binding:"required"`
	Branches []OnboardingBranchRequest  `json:"branches" binding:"required,min=1"`
	Services []OnboardingServiceRequest `json:"services" binding:"required,min=1"`
}

// ======================================================
// COMPLETE
// ======================================================

// Complete arma el tenant completo en una sola transacción: nombre del
// negocio, sucursales con sus sillas, servicios, y marca al usuario
// como onboardeado. Si cualquier parte falla no queda nada a medias.
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID := userFromContext(c)
	tenantID := tenantFromContext(c)

	var req CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	for _, b := range req.Branches {
		if err := validators.ValidateBranchSchedule(
			b.WorkDays, b.StartTime, b.EndTime, b.LunchStart, b.LunchEnd,
		); err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tenant{}).
			Where("id = ?", tenantID).
			Update("shop_name", req.ShopName).Error; err != nil {
			return err
		}

		for _, b := range req.Branches {
			branch := models.Branch{
				TenantID:   tenantID,
				Name:       b.Name,
				WorkDays:   b.WorkDays,
				StartTime:  b.StartTime,
				EndTime:    b.EndTime,
				LunchStart: b.LunchStart,
				LunchEnd:   b.LunchEnd,
			}
			if err := tx.Create(&branch).Error; err != nil {
				return err
			}

			for i := 1; i <= b.Chairs; i++ {
				chair := models.Chair{
					BranchID:    branch.ID,
					ChairNumber: i,
				}
				if err := tx.Create(&chair).Error; err != nil {
					return err
				}
			}
		}

		for _, s := range req.Services {
			service := models.Service{
				TenantID:    tenantID,
				Name:        s.Name,
				Price:       s.Price,
				DurationMin: s.Duration,
			}
			if err := tx.Create(&service).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("onboarded", true).Error
	})
	if err != nil {
		httperr.Internal(c, "onboarding_failed", "No se pudo completar la configuración.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarded": true})
}
