package schedule

import (
	"fmt"
	"time"

	"github.com/corteturno/corteturno/internal/httperr"
)

// Todo el cálculo de horarios opera en minutos desde medianoche; las
// horas HH:MM se parsean una sola vez por llamada.

var dayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}

// WeekdayName devuelve el nombre del día en español para comparar
// contra Branch.WorkDays.
func WeekdayName(date time.Time) string {
	return dayNames[int(date.Weekday())]
}

// ParseHHMM convierte "HH:MM" a minutos desde medianoche.
// Datos persistidos nunca deberían fallar aquí; el chequeo es defensivo.
func ParseHHMM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_schedule")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes convierte minutos desde medianoche a "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
