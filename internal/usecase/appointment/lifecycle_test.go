package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/corteturno/corteturno/internal/httperr"
	"github.com/corteturno/corteturno/internal/models"
	"github.com/corteturno/corteturno/internal/notify"
)

func TestRescheduleAppointment(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	reschedule := NewRescheduleAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	ap, err := create.Execute(ctx, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	moved, err := reschedule.Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		TenantID:      &f.tenant.ID,
		NewDate:       "2026-01-06",
		NewTime:       "16:00",
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if moved.ID != ap.ID || moved.Date != "2026-01-06" || moved.Time != "16:00" {
		t.Fatalf("unexpected result: %+v", moved)
	}

	events := f.pendingEvents(t, f.tenant.ID)
	if len(events) != 2 {
		t.Fatalf("expected booking + reschedule events, got %d", len(events))
	}
	last := events[1]
	if last.Type != notify.TypeRescheduled || last.Data.Action != "reagendada" {
		t.Fatalf("unexpected event: %+v", last)
	}
	if last.Data.Date != "2026-01-06" || last.Data.Time != "16:00" {
		t.Fatalf("event should carry the new slot: %+v", last.Data)
	}
}

func TestRescheduleValidatesFormats(t *testing.T) {
	f := setupFixture(t)
	reschedule := NewRescheduleAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	_, err := reschedule.Execute(ctx, RescheduleInput{
		AppointmentID: 1,
		NewDate:       "06-01-2026",
		NewTime:       "16:00",
	})
	if !httperr.IsBusiness(err, "validation_error") {
		t.Fatalf("expected validation_error, got %v", err)
	}

	_, err = reschedule.Execute(ctx, RescheduleInput{
		AppointmentID: 1,
		NewDate:       "2026-01-06",
		NewTime:       "4pm",
	})
	if !httperr.IsBusiness(err, "validation_error") {
		t.Fatalf("expected validation_error, got %v", err)
	}
}

func TestRescheduleScopedToTenant(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	reschedule := NewRescheduleAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	ap, err := create.Execute(ctx, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	foreign := f.tenant.ID + 1
	_, err = reschedule.Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		TenantID:      &foreign,
		NewDate:       "2026-01-06",
		NewTime:       "16:00",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	cancel := NewCancelAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	ap, err := create.Execute(ctx, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := cancel.Execute(ctx, ap.ID, &f.tenant.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var count int64
	f.db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected row deleted, found %d", count)
	}

	events := f.pendingEvents(t, f.tenant.ID)
	if len(events) != 2 || events[1].Type != notify.TypeCancelled {
		t.Fatalf("expected cancellation event, got %+v", events)
	}
}

func TestCancelPublicOnlyScheduled(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	status := NewUpdateStatus(f.repo)
	cancel := NewCancelAppointment(f.repo, f.dispatcher)
	ctx := context.Background()

	ap, err := create.Execute(ctx, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := status.Execute(ctx, f.tenant.ID, ap.ID, "completed"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Flujo público (sin tenant): una cita resuelta ya no se cancela.
	err = cancel.Execute(ctx, ap.ID, nil)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	status := NewUpdateStatus(f.repo)
	ctx := context.Background()

	ap, err := create.Execute(ctx, f.createInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := status.Execute(ctx, f.tenant.ID, ap.ID, "no-show")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "no-show" {
		t.Fatalf("expected no-show, got %s", updated.Status)
	}

	// Los estados finales no cambian.
	_, err = status.Execute(ctx, f.tenant.ID, ap.ID, "completed")
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	_, err = status.Execute(ctx, f.tenant.ID, ap.ID, "done")
	if !httperr.IsBusiness(err, "validation_error") {
		t.Fatalf("expected validation_error for unknown status, got %v", err)
	}
}

func TestListOverdue(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	overdue := NewListOverdue(f.repo)
	ctx := context.Background()

	past := f.createInput()
	past.Date = "2026-01-05"
	past.Time = "09:00"
	if _, err := create.Execute(ctx, past); err != nil {
		t.Fatalf("past: %v", err)
	}

	recent := f.createInput()
	recent.Date = "2026-01-05"
	recent.Time = "10:00"
	if _, err := create.Execute(ctx, recent); err != nil {
		t.Fatalf("recent: %v", err)
	}

	// 10:05: la de las 09:00 terminó 09:30 y ya venció el margen de 15;
	// la de las 10:00 sigue en curso.
	now := time.Date(2026, 1, 5, 10, 5, 0, 0, time.UTC)
	got, err := overdue.Execute(ctx, now)
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 overdue appointment, got %d", len(got))
	}
	if got[0].Time != "09:00" {
		t.Fatalf("wrong appointment flagged: %+v", got[0])
	}
}

func TestListClientAppointments(t *testing.T) {
	f := setupFixture(t)
	create := NewCreateAppointment(f.repo, f.dispatcher)
	list := NewListClientAppointments(f.repo)
	ctx := context.Background()

	mine := f.createInput()
	if _, err := create.Execute(ctx, mine); err != nil {
		t.Fatalf("create: %v", err)
	}

	other := f.createInput()
	other.ClientPhone = "5599999999"
	other.Time = "11:00"
	if _, err := create.Execute(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	got, err := list.Execute(ctx, "5512345678", f.branch.ID, f.chair.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ClientPhone != "5512345678" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
