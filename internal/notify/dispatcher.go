package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher desacopla la creación de citas de la entrega de
// notificaciones: encola y un worker persiste en el Store. Un fallo de
// notificación jamás revierte una reserva.
type Dispatcher struct {
	store  Store
	logger *zap.Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(store Store, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go d.worker()
}

// Stop cierra la cola y espera a que el worker drene lo pendiente.
func (d *Dispatcher) Stop() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.store.Append(ctx, ev); err != nil {
			d.logger.Warn("notification append failed",
				zap.String("type", ev.Type),
				zap.Uint("tenant_id", ev.TenantID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch nunca bloquea: con la cola llena se descarta el evento
// (las notificaciones no pueden tumbar el API).
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("notification queue full, dropping event",
			zap.String("type", ev.Type),
			zap.Uint("tenant_id", ev.TenantID),
		)
	}
}
