package models

import "time"

type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `json:"tenant_id"`
	Tenant   Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `json:"price"`

	// DurationMin <= 0 se trata como 30 al generar horarios
	DurationMin int `gorm:"column:duration" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
