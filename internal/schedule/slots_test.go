package schedule

import (
	"testing"
	"time"

	"github.com/corteturno/corteturno/internal/httperr"
)

// 2026-01-05 es lunes.
func monday() time.Time {
	return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
}

func slotTimes(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func assertTimes(t *testing.T, got []Slot, want []string) {
	t.Helper()
	times := slotTimes(got)
	if len(times) != len(want) {
		t.Fatalf("expected %d slots %v, got %d: %v", len(want), want, len(times), times)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("slot %d: expected %s, got %s (all: %v)", i, want[i], times[i], times)
		}
	}
}

func TestGenerateFullDayWithLunchAndBooking(t *testing.T) {
	cfg := Config{
		WorkDays:   []string{"Lunes"},
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "14:00",
		LunchEnd:   "15:00",
	}
	bookings := []Booking{{Time: "10:00", DurationMin: 30}}

	slots, err := Generate(cfg, 30, monday(), bookings, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{
		"09:00", "09:30", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30",
		"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	})
}

func TestGenerateClosedDayReturnsEmpty(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "18:00",
	}

	tuesday := monday().AddDate(0, 0, 1)
	slots, err := Generate(cfg, 30, tuesday, nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slotTimes(slots))
	}
}

// El almuerzo excluye un slot solo por su hora de INICIO; un servicio
// largo que arranca antes del almuerzo y lo invade sigue ofreciéndose.
// El conflicto con citas, en cambio, sí usa el intervalo completo.
func TestGenerateLunchExcludesByStartOnly(t *testing.T) {
	cfg := Config{
		WorkDays:   []string{"Lunes"},
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
	}

	slots, err := Generate(cfg, 90, monday(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	times := slotTimes(slots)
	found1130 := false
	for _, tm := range times {
		if tm == "12:00" || tm == "12:30" {
			t.Fatalf("slot starting inside lunch should be excluded, got %v", times)
		}
		if tm == "11:30" {
			found1130 = true
		}
	}
	// 11:30 + 90min invade el almuerzo pero su inicio es anterior.
	if !found1130 {
		t.Fatalf("expected 11:30 to be offered despite overlapping lunch, got %v", times)
	}
}

func TestGenerateAppointmentConflictUsesFullOverlap(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "12:00",
	}
	// 10:00-11:00 ocupado por un servicio de 60.
	bookings := []Booking{{Time: "10:00", DurationMin: 60}}

	slots, err := Generate(cfg, 60, monday(), bookings, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:30+60 invade la cita; 11:00 arranca justo al terminar.
	assertTimes(t, slots, []string{"09:00", "11:00"})
}

func TestGenerateLastSlotMustFitBeforeClose(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "16:00",
		EndTime:   "18:00",
	}

	slots, err := Generate(cfg, 60, monday(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 17:30+60 > 18:00, se descarta.
	assertTimes(t, slots, []string{"16:00", "16:30", "17:00"})
}

func TestGenerateDefaultDuration(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "10:30",
	}

	slots, err := Generate(cfg, 0, monday(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{"09:00", "09:30", "10:00"})
}

func TestGenerateSameDayFloor(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	// 09:50 + 30 de anticipación = 10:20, redondeado a 10:30.
	now := time.Date(2026, 1, 5, 9, 50, 0, 0, time.UTC)

	slots, err := Generate(cfg, 30, monday(), nil, Options{Now: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{"10:30", "11:00", "11:30"})
}

func TestGenerateFloorOnlyAppliesToSameDay(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "11:00",
	}

	// Consulta para el lunes hecha el domingo: sin piso.
	now := time.Date(2026, 1, 4, 23, 0, 0, 0, time.UTC)

	slots, err := Generate(cfg, 30, monday(), nil, Options{Now: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{"09:00", "09:30", "10:00", "10:30"})
}

// El piso del mismo día re-alinea el cursor a la grilla de 30 aunque la
// apertura esté fuera de grilla. Comportamiento heredado: con apertura
// 09:15 y piso activo, los slots salen en :00/:30, no en :15/:45.
func TestGenerateFloorRegridsOffGridOpenTime(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:15",
		EndTime:   "12:00",
	}

	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	slots, err := Generate(cfg, 30, monday(), nil, Options{Now: &now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Piso = ceil((540+30)/30)*30 = 570 = 09:30.
	assertTimes(t, slots, []string{"09:30", "10:00", "10:30", "11:00", "11:30"})
}

func TestGenerateNoFloorForStaff(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "10:30",
	}

	// Options.Now nil: el staff ve el día completo aunque ya sea tarde.
	slots, err := Generate(cfg, 30, monday(), nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{"09:00", "09:30", "10:00"})
}

func TestGenerateMalformedTimes(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "9am",
		EndTime:   "18:00",
	}

	_, err := Generate(cfg, 30, monday(), nil, Options{})
	if !httperr.IsBusiness(err, "invalid_schedule") {
		t.Fatalf("expected invalid_schedule, got %v", err)
	}
}

func TestGenerateBookingDefaultDuration(t *testing.T) {
	cfg := Config{
		WorkDays:  []string{"Lunes"},
		StartTime: "09:00",
		EndTime:   "11:00",
	}
	// La cita existente no tiene duración: se asume 30.
	bookings := []Booking{{Time: "09:30"}}

	slots, err := Generate(cfg, 30, monday(), bookings, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertTimes(t, slots, []string{"09:00", "10:00", "10:30"})
}
