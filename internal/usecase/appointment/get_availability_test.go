package appointment

import (
	"context"
	"testing"
	"time"
)

// 2026-01-05 es lunes.
func mondayNoon() time.Time {
	return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
}

func (f *fixture) availabilityInput() AvailabilityInput {
	return AvailabilityInput{
		TenantID:  &f.tenant.ID,
		BranchID:  f.branch.ID,
		ChairID:   f.chair.ID,
		ServiceID: f.service.ID,
		Date:      mondayNoon(),
	}
}

func TestGetAvailabilityFullDay(t *testing.T) {
	f := setupFixture(t)
	uc := NewGetAvailability(f.repo)

	slots, err := uc.Execute(context.Background(), f.availabilityInput())
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	// 09:00-18:00 con almuerzo 14:00-15:00 y servicio de 30: 16 slots.
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" || slots[len(slots)-1].Time != "17:30" {
		t.Fatalf("unexpected range: %s .. %s", slots[0].Time, slots[len(slots)-1].Time)
	}
}

func TestGetAvailabilityExcludesBooked(t *testing.T) {
	f := setupFixture(t)
	availability := NewGetAvailability(f.repo)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	if _, err := create.Execute(ctx, f.createInput()); err != nil {
		t.Fatalf("booking: %v", err)
	}

	slots, err := availability.Execute(ctx, f.availabilityInput())
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	for _, s := range slots {
		if s.Time == "10:00" {
			t.Fatal("booked slot still offered")
		}
	}
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
}

// Consultar disponibilidad es una lectura pura: nunca reserva ni
// altera el estado del libro de citas.
func TestGetAvailabilityIsIdempotent(t *testing.T) {
	f := setupFixture(t)
	uc := NewGetAvailability(f.repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, f.availabilityInput())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := uc.Execute(ctx, f.availabilityInput())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("repeated reads differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGetAvailabilityPublicFloor(t *testing.T) {
	f := setupFixture(t)
	uc := NewGetAvailability(f.repo)

	now := time.Date(2026, 1, 5, 9, 50, 0, 0, time.UTC)
	in := f.availabilityInput()
	in.TenantID = nil
	in.Public = true
	in.Now = &now

	slots, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	// 09:50 + 30 = 10:20, redondeado a 10:30.
	if len(slots) == 0 || slots[0].Time != "10:30" {
		t.Fatalf("expected first slot 10:30, got %+v", slots)
	}
}

func TestGetAvailabilityStaffHasNoFloor(t *testing.T) {
	f := setupFixture(t)
	uc := NewGetAvailability(f.repo)

	now := time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)
	in := f.availabilityInput()
	in.Now = &now // ignorado: Public es false

	slots, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) == 0 || slots[0].Time != "09:00" {
		t.Fatalf("staff should see the whole day, got %+v", slots)
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	f := setupFixture(t)
	uc := NewGetAvailability(f.repo)

	in := f.availabilityInput()
	in.Date = mondayNoon().AddDate(0, 0, 5) // sábado

	slots, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty slot list on a closed day, got %d", len(slots))
	}
}
