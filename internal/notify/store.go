package notify

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL: las notificaciones pendientes viven poco; el tablero las
// consulta por polling y lo no leído expira solo.
const DefaultTTL = 30 * time.Second

// Store es el sink de eventos consultable por tenant. Las escrituras
// llegan vía Dispatcher; las lecturas desde el endpoint de polling.
type Store interface {
	Append(ctx context.Context, ev Event) error
	Pending(ctx context.Context, tenantID uint) ([]Event, error)
	MarkRead(ctx context.Context, tenantID uint) error
}

type memoryEntry struct {
	event     Event
	expiresAt time.Time
}

// MemoryStore guarda eventos por tenant en memoria con TTL por entrada.
// Es el reemplazo del mapa global del sistema anterior: estado propio,
// ciclo de vida explícito (Start/Stop del janitor) e inyectable.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uint][]memoryEntry
	stop    chan struct{}
	once    sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[uint][]memoryEntry),
		stop:    make(chan struct{}),
	}
}

// Start lanza el janitor que descarta entradas vencidas.
func (s *MemoryStore) Start() {
	go func() {
		ticker := time.NewTicker(s.ttl)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.evictExpired(time.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) Append(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[ev.TenantID] = append(s.entries[ev.TenantID], memoryEntry{
		event:     ev,
		expiresAt: time.Now().Add(s.ttl),
	})
	return nil
}

func (s *MemoryStore) Pending(_ context.Context, tenantID uint) ([]Event, error) {
	s.evictExpired(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[tenantID]
	out := make([]Event, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.event)
	}
	return out, nil
}

func (s *MemoryStore) MarkRead(_ context.Context, tenantID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, tenantID)
	return nil
}

func (s *MemoryStore) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for tenant, entries := range s.entries {
		kept := entries[:0]
		for _, e := range entries {
			if e.expiresAt.After(now) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(s.entries, tenant)
		} else {
			s.entries[tenant] = kept
		}
	}
}
