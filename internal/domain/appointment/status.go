package appointment

import "github.com/corteturno/corteturno/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// CanTransition: solo una cita agendada puede marcarse completada o
// no-show; los estados finales no cambian.
func CanTransition(current, next Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	if next != StatusCompleted && next != StatusNoShow {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
