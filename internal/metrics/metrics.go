package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corteturno_bookings_created_total",
		Help: "Citas creadas, por origen (public/admin).",
	}, []string{"source"})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corteturno_booking_conflicts_total",
		Help: "Reservas rechazadas por slot ya tomado.",
	})

	AvailabilityRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corteturno_availability_requests_total",
		Help: "Consultas de horarios disponibles.",
	})
)
