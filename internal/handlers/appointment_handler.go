package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/httpresp"
	ucAppointment "github.com/corteturno/corteturno/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	list         *ucAppointment.ListAppointments
	reschedule   *ucAppointment.RescheduleAppointment
	updateStatus *ucAppointment.UpdateStatus
	cancel       *ucAppointment.CancelAppointment
	stats        *ucAppointment.GetDayStats
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	reschedule *ucAppointment.RescheduleAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	cancel *ucAppointment.CancelAppointment,
	stats *ucAppointment.GetDayStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		list:         list,
		reschedule:   reschedule,
		updateStatus: updateStatus,
		cancel:       cancel,
		stats:        stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffBookRequest struct {
	BranchID    uint   `json:"branch_id" binding:"required"`
	ChairID     uint   `json:"chair_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

// UpdateAppointmentRequest cubre las dos acciones del PATCH de staff:
// cambiar el estado, o mover la cita a otra fecha/hora.
type UpdateAppointmentRequest struct {
	Status  string `json:"status"`
	NewDate string `json:"new_date"`
	NewTime string `json:"new_time"`
}

// ======================================================
// AVAILABILITY (staff: sin piso de anticipación)
// ======================================================

func (h *AppointmentHandler) AvailableTimes(c *gin.Context) {
	tenantID := tenantFromContext(c)

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
		TenantID:  &tenantID,
		BranchID:  branchID,
		ChairID:   chairID,
		ServiceID: serviceID,
		Date:      date,
		Public:    false,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CRUD
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	tenantID := tenantFromContext(c)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "validation_error", "Falta el parámetro date.")
		return
	}

	var branchID *uint
	if v, ok := queryUint(c, "branch"); ok {
		branchID = &v
	}

	appointments, err := h.list.Execute(c.Request.Context(), tenantID, date, branchID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID := tenantFromContext(c)

	var req StaffBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:    &tenantID,
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

func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID := tenantFromContext(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	switch {
	case req.Status != "":
		ap, err := h.updateStatus.Execute(c.Request.Context(), tenantID, appointmentID, req.Status)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.OK(c, ap)

	case req.NewDate != "" || req.NewTime != "":
		ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
			AppointmentID: appointmentID,
			TenantID:      &tenantID,
			NewDate:       req.NewDate,
			NewTime:       req.NewTime,
		})
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.OK(c, ap)

	default:
		httperr.BadRequest(c, "validation_error", "Nada que actualizar.")
	}
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	tenantID := tenantFromContext(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "ID inválido.")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), appointmentID, &tenantID); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ======================================================
// STATS
// ======================================================

func (h *AppointmentHandler) Stats(c *gin.Context) {
	tenantID := tenantFromContext(c)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "validation_error", "Falta el parámetro date.")
		return
	}

	branchID, ok := queryUint(c, "branch")
	if !ok {
		httperr.BadRequest(c, "validation_error", "Falta el parámetro branch.")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), tenantID, branchID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, stats)
}
