package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/timezone"
)

// parseDateAtNoon interpreta YYYY-MM-DD al mediodía local. Anclar al
// mediodía evita que un cambio de horario de verano mueva la fecha al
// día anterior o siguiente al calcular el día de la semana.
func parseDateAtNoon(date string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, timezone.Location(timezone.DefaultTimezone))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("validation_error")
	}
	return d.Add(12 * time.Hour), nil
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
