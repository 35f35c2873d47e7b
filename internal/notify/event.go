package notify

import "github.com/google/uuid"

const (
	TypePublicBooking = "public_booking"
	TypeAdminBooking  = "admin_booking"
	TypeRescheduled   = "appointment_rescheduled"
	TypeCancelled     = "appointment_cancelled"
	TypeOverdue       = "appointment_overdue"
)

type EventData struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceName string `json:"serviceName"`
	ChairNumber int    `json:"chairNumber"`
	BranchName  string `json:"branchName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Action      string `json:"action,omitempty"`
}

type Event struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	TenantID uint      `json:"tenantId"`
	BranchID uint      `json:"branchId"`
	ChairID  uint      `json:"chairId"`
	Data     EventData `json:"data"`
}

func NewEvent(eventType string, tenantID, branchID, chairID uint, data EventData) Event {
	return Event{
		ID:       uuid.NewString(),
		Type:     eventType,
		TenantID: tenantID,
		BranchID: branchID,
		ChairID:  chairID,
		Data:     data,
	}
}
