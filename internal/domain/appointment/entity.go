package appointment

import (
	"time"

	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/schedule"
)

// OverdueAfter es el margen tras el fin calculado de la cita antes de
// marcarla como pendiente de resolución manual.
const OverdueAfter = 15 * time.Minute

// SetStatus aplica una transición de estado validada.
func SetStatus(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}

// EndTime calcula el fin de la cita (inicio + duración del servicio)
// en la zona horaria dada.
func EndTime(ap *models.Appointment, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", ap.Date+" "+ap.Time, loc)
	if err != nil {
		return time.Time{}, err
	}

	dur := ap.Service.DurationMin
	if dur <= 0 {
		dur = schedule.DefaultServiceMinutes
	}

	return start.Add(time.Duration(dur) * time.Minute), nil
}

// IsOverdue reporta si una cita sigue agendada pasado su fin + margen.
func IsOverdue(ap *models.Appointment, now time.Time) bool {
	if Status(ap.Status) != StatusScheduled {
		return false
	}
	end, err := EndTime(ap, now.Location())
	if err != nil {
		return false
	}
	return now.After(end.Add(OverdueAfter))
}
