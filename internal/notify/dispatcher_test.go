package notify

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDispatcherDeliversToStore(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	d := NewDispatcher(store, zap.NewNop())
	d.Start()

	d.Dispatch(NewEvent(TypePublicBooking, 7, 1, 1, EventData{ClientName: "Ana"}))
	d.Dispatch(NewEvent(TypeCancelled, 7, 1, 1, EventData{ClientName: "Ana"}))

	// Stop drena la cola antes de volver.
	d.Stop()

	got, err := store.Pending(context.Background(), 7)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 delivered events, got %d", len(got))
	}
	if got[0].Type != TypePublicBooking || got[1].Type != TypeCancelled {
		t.Fatalf("unexpected event types: %+v", got)
	}
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	d := NewDispatcher(store, zap.NewNop())
	// Sin Start: el worker no consume y la cola (100) se llena.

	for i := 0; i < 150; i++ {
		d.Dispatch(NewEvent(TypeAdminBooking, 1, 1, 1, EventData{}))
	}

	d.Start()
	d.Stop()

	got, _ := store.Pending(context.Background(), 1)
	if len(got) != 100 {
		t.Fatalf("expected 100 queued events delivered, got %d", len(got))
	}
}
