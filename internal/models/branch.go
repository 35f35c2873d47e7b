package models

import "time"

// WorkDays guarda nombres de día en español (Domingo..Sábado),
// igual que la pantalla de configuración los envía.
type Branch struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `json:"tenant_id"`
	Tenant   Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string   `gorm:"size:100;not null" json:"name"`
	WorkDays []string `gorm:"serializer:json" json:"work_days"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`

	Chairs []Chair `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"chairs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
