package validators

import (
	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/schedule"
)

var validDayNames = map[string]bool{
	"Domingo":   true,
	"Lunes":     true,
	"Martes":    true,
	"Miércoles": true,
	"Jueves":    true,
	"Viernes":   true,
	"Sábado":    true,
}

// ValidateBranchSchedule valida la configuración de horario de una
// sucursal antes de persistirla: días válidos y únicos, apertura antes
// del cierre, y almuerzo (si existe) completo y contenido en el día.
func ValidateBranchSchedule(workDays []string, startTime, endTime, lunchStart, lunchEnd string) error {
	seen := map[string]bool{}
	for _, d := range workDays {
		if !validDayNames[d] || seen[d] {
			return httperr.ErrBusiness("invalid_schedule")
		}
		seen[d] = true
	}

	open, err := schedule.ParseHHMM(startTime)
	if err != nil {
		return err
	}
	closeAt, err := schedule.ParseHHMM(endTime)
	if err != nil {
		return err
	}
	if open >= closeAt {
		return httperr.ErrBusiness("invalid_schedule")
	}

	// Ambos campos de almuerzo presentes o ambos vacíos.
	if (lunchStart == "") != (lunchEnd == "") {
		return httperr.ErrBusiness("invalid_schedule")
	}
	if lunchStart != "" {
		ls, err := schedule.ParseHHMM(lunchStart)
		if err != nil {
			return err
		}
		le, err := schedule.ParseHHMM(lunchEnd)
		if err != nil {
			return err
		}
		if ls >= le || ls < open || le > closeAt {
			return httperr.ErrBusiness("invalid_schedule")
		}
	}

	return nil
}
