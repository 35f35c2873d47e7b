package notify

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStorePendingPerTenant(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s.Append(ctx, NewEvent(TypePublicBooking, 1, 1, 1, EventData{ClientName: "Ana"}))
	s.Append(ctx, NewEvent(TypeAdminBooking, 1, 1, 1, EventData{ClientName: "Luis"}))
	s.Append(ctx, NewEvent(TypePublicBooking, 2, 5, 9, EventData{ClientName: "Eva"}))

	got, err := s.Pending(ctx, 1)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tenant 1: expected 2 events, got %d", len(got))
	}
	if got[0].Data.ClientName != "Ana" || got[1].Data.ClientName != "Luis" {
		t.Fatalf("events out of order: %+v", got)
	}

	other, _ := s.Pending(ctx, 2)
	if len(other) != 1 {
		t.Fatalf("tenant 2: expected 1 event, got %d", len(other))
	}
}

func TestMemoryStoreMarkRead(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s.Append(ctx, NewEvent(TypePublicBooking, 1, 1, 1, EventData{}))
	if err := s.MarkRead(ctx, 1); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	got, _ := s.Pending(ctx, 1)
	if len(got) != 0 {
		t.Fatalf("expected no events after mark-read, got %d", len(got))
	}
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	s.Append(ctx, NewEvent(TypePublicBooking, 1, 1, 1, EventData{}))

	time.Sleep(40 * time.Millisecond)

	got, _ := s.Pending(ctx, 1)
	if len(got) != 0 {
		t.Fatalf("expected expired events to be gone, got %d", len(got))
	}
}

func TestNewEventAssignsID(t *testing.T) {
	a := NewEvent(TypePublicBooking, 1, 1, 1, EventData{})
	b := NewEvent(TypePublicBooking, 1, 1, 1, EventData{})
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique non-empty ids, got %q and %q", a.ID, b.ID)
	}
}
