package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/corteturno/corteturno/internal/notify"
	"github.com/corteturno/corteturno/internal/timezone"
	ucAppointment "github.com/corteturno/corteturno/internal/usecase/appointment"
)

const sweepInterval = 5 * time.Minute

// Reconciler es el barrido del lado del servidor que reemplaza los
// timers del cliente: cualquier cita aún "scheduled" pasados 15
// minutos de su fin calculado se notifica para resolución manual.
// Nunca cambia el estado por su cuenta.
type Reconciler struct {
	overdue  *ucAppointment.ListOverdue
	notify   *notify.Dispatcher
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewReconciler(
	overdue *ucAppointment.ListOverdue,
	dispatcher *notify.Dispatcher,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		overdue:  overdue,
		notify:   dispatcher,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	r.logger.Info("starting overdue appointment sweep")
	go r.run(ctx)
}

func (r *Reconciler) Stop() {
	r.logger.Info("stopping overdue appointment sweep")
	close(r.stopChan)
}

func (r *Reconciler) run(ctx context.Context) {
	r.sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)
		case <-r.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	now := timezone.Now()

	overdue, err := r.overdue.Execute(ctx, now)
	if err != nil {
		r.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}

	for _, ap := range overdue {
		r.notify.Dispatch(notify.NewEvent(
			notify.TypeOverdue,
			ap.TenantID,
			ap.BranchID,
			ap.ChairID,
			notify.EventData{
				ClientName:  ap.ClientName,
				ClientPhone: ap.ClientPhone,
				ServiceName: ap.Service.Name,
				Date:        ap.Date,
				Time:        ap.Time,
				Action:      "vencida",
			},
		))
	}

	if len(overdue) > 0 {
		r.logger.Info("overdue appointments flagged", zap.Int("count", len(overdue)))
	}
}
