package schedule

import "time"

const (
	// Las citas arrancan siempre en una grilla fija de 30 minutos,
	// independiente de la duración del servicio.
	StepMinutes = 30

	// DefaultServiceMinutes aplica cuando el servicio no define duración.
	DefaultServiceMinutes = 30

	// LeadTimeMinutes es la anticipación mínima para reservas públicas
	// del mismo día.
	LeadTimeMinutes = 30
)

// Config son los parámetros de operación de una sucursal, tal como
// están persistidos en la fila de Branch.
type Config struct {
	WorkDays   []string
	StartTime  string
	EndTime    string
	LunchStart string
	LunchEnd   string
}

// Slot es un horario candidato; se calcula en cada consulta y nunca
// se persiste.
type Slot struct {
	Time      string `json:"time"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// Booking es una cita agendada existente vista por el generador:
// hora de inicio y duración del servicio asociado.
type Booking struct {
	Time        string
	DurationMin int
}

// Options controla la variante del generador. Now != nil activa el piso
// de anticipación del mismo día (solo reservas públicas; el staff puede
// registrar citas en el pasado).
type Options struct {
	Now *time.Time
}

// Generate calcula los horarios reservables para una silla, fecha y
// servicio. Devuelve la secuencia ordenada de inicios candidatos o una
// secuencia vacía si la sucursal no abre ese día.
//
// Regla heredada y deliberadamente conservada: el almuerzo excluye un
// slot solo por su INICIO (lunchStart <= t < lunchEnd), mientras que el
// conflicto con citas usa solapamiento de intervalo completo. Un slot
// que empieza antes del almuerzo y cuyo servicio invade el almuerzo NO
// queda excluido por la regla de almuerzo.
func Generate(cfg Config, serviceMinutes int, date time.Time, bookings []Booking, opts Options) ([]Slot, error) {
	if !isWorkDay(cfg.WorkDays, date) {
		return []Slot{}, nil
	}

	if serviceMinutes <= 0 {
		serviceMinutes = DefaultServiceMinutes
	}

	openMin, err := ParseHHMM(cfg.StartTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseHHMM(cfg.EndTime)
	if err != nil {
		return nil, err
	}

	hasLunch := cfg.LunchStart != "" && cfg.LunchEnd != ""
	var lunchStart, lunchEnd int
	if hasLunch {
		if lunchStart, err = ParseHHMM(cfg.LunchStart); err != nil {
			return nil, err
		}
		if lunchEnd, err = ParseHHMM(cfg.LunchEnd); err != nil {
			return nil, err
		}
	}

	busy, err := busyIntervals(bookings)
	if err != nil {
		return nil, err
	}

	cursor := openMin
	if opts.Now != nil && sameDay(*opts.Now, date) {
		// Piso del mismo día: ahora + 30, redondeado hacia arriba a la
		// grilla de 30. El cursor arranca en ese límite aunque la hora
		// de apertura esté fuera de grilla (comportamiento heredado).
		nowMinutes := opts.Now.Hour()*60 + opts.Now.Minute()
		floor := ((nowMinutes + LeadTimeMinutes + StepMinutes - 1) / StepMinutes) * StepMinutes
		if floor > cursor {
			cursor = floor
		}
	}

	slots := []Slot{}
	for ; cursor+serviceMinutes <= closeMin; cursor += StepMinutes {
		if hasLunch && cursor >= lunchStart && cursor < lunchEnd {
			continue
		}

		if overlapsAny(busy, cursor, cursor+serviceMinutes) {
			continue
		}

		t := FormatMinutes(cursor)
		slots = append(slots, Slot{Time: t, Display: t, Available: true})
	}

	return slots, nil
}

type interval struct {
	start int
	end   int
}

func busyIntervals(bookings []Booking) ([]interval, error) {
	out := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := ParseHHMM(b.Time)
		if err != nil {
			return nil, err
		}
		dur := b.DurationMin
		if dur <= 0 {
			dur = DefaultServiceMinutes
		}
		out = append(out, interval{start: start, end: start + dur})
	}
	return out, nil
}

// Solapamiento semiabierto estándar; citas espalda con espalda no
// chocan entre sí.
func overlapsAny(busy []interval, start, end int) bool {
	for _, iv := range busy {
		if start < iv.end && end > iv.start {
			return true
		}
	}
	return false
}

func isWorkDay(workDays []string, date time.Time) bool {
	name := WeekdayName(date)
	for _, d := range workDays {
		if d == name {
			return true
		}
	}
	return false
}

func sameDay(now, date time.Time) bool {
	return now.Format("2006-01-02") == date.Format("2006-01-02")
}
