package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	"github.com/corteturno/corteturno/internal/models"
	ucAppointment "github.com/corteturno/corteturno/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atiende el enlace de reserva que el negocio comparte
// con sus clientes: nadie tiene sesión, el tenant se resuelve desde la
// sucursal del enlace.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	clientList   *ucAppointment.ListClientAppointments
	reschedule   *ucAppointment.RescheduleAppointment
	cancel       *ucAppointment.CancelAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	clientList *ucAppointment.ListClientAppointments,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
		clientList:   clientList,
		reschedule:   reschedule,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicBookRequest struct {
	BranchID    uint   `json:"branch_id" binding:"required"`
	ChairID     uint   `json:"chair_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type PublicRescheduleRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
}

// ======================================================
// BRANCH INFO
// ======================================================

func (h *PublicHandler) GetBranch(c *gin.Context) {
	branchID, ok := paramUint(c, "branchId")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var branch models.Branch
	if err := h.db.Preload("Chairs").Preload("Tenant").
		First(&branch, branchID).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Sucursal no encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":    branch,
		"shop_name": branch.Tenant.ShopName,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	branchID, ok := paramUint(c, "branchId")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Sucursal no encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.Where("tenant_id = ?", branch.TenantID).
		Order("id").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// AVAILABILITY (con piso de anticipación del mismo día)
// ======================================================

func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	branchID, ok1 := queryUint(c, "branchId")
	chairID, ok2 := queryUint(c, "chairId")
	serviceID, ok3 := queryUint(c, "serviceId")
	if !ok1 || !ok2 || !ok3 {
		httperr.BadRequest(c, "validation_error", "Parámetros incompletos.")
		return
	}

	date, err := parseDateAtNoon(c.Query("date"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BranchID:  branchID,
		ChairID:   chairID,
		ServiceID: serviceID,
		Date:      date,
		Public:    true,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) Book(c *gin.Context) {
	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BranchID:    req.BranchID,
		ChairID:     req.ChairID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CLIENT SELF-SERVICE
// ======================================================

func (h *PublicHandler) ListAppointments(c *gin.Context) {
	phone := c.Query("phone")
	branchID, ok1 := queryUint(c, "branchId")
	chairID, ok2 := queryUint(c, "chairId")
	if phone == "" || !ok1 || !ok2 {
		httperr.BadRequest(c, "validation_error", "Parámetros incompletos.")
		return
	}

	appointments, err := h.clientList.Execute(c.Request.Context(), phone, branchID, chairID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *PublicHandler) Reschedule(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var req PublicRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: appointmentID,
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *PublicHandler) Cancel(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), appointmentID, nil); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
