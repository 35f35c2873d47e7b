package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/middleware"
)

var businessMessages = map[string]string{
	"branch_not_found":      "Sucursal no encontrada.",
	"chair_not_found":       "Silla no encontrada.",
	"service_not_found":     "Servicio no encontrado.",
	"appointment_not_found": "Cita no encontrada.",
	"slot_taken":            "Ese horario acaba de ocuparse. Elige otro.",
	"invalid_schedule":      "Configuración de horario inválida.",
	"validation_error":      "Datos inválidos.",
	"invalid_state":         "La cita no permite ese cambio de estado.",
}

// writeBusinessError traduce los códigos de los use cases al status
// HTTP correspondiente. Cualquier error no tipado es un 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	msg := businessMessages[be.Code]

	switch be.Code {
	case "branch_not_found", "chair_not_found", "service_not_found", "appointment_not_found":
		httperr.NotFound(c, be.Code, msg)
	case "slot_taken", "invalid_state":
		httperr.Conflict(c, be.Code, msg)
	case "invalid_schedule", "validation_error":
		httperr.BadRequest(c, be.Code, msg)
	default:
		httperr.Internal(c, be.Code, "Error interno.")
	}
}

func tenantFromContext(c *gin.Context) uint {
	return c.MustGet(middleware.ContextTenantID).(uint)
}

func userFromContext(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}
