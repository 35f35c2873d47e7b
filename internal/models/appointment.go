package models

import "time"

// Date y Time se guardan como texto (YYYY-MM-DD / HH:MM): el guard de
// reserva compara exactamente estos valores y el índice único parcial
// sobre (chair_id, date, time) los usa tal cual.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TenantID uint `json:"tenant_id"`

	BranchID uint   `json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ChairID uint  `gorm:"index" json:"chair_id"`
	Chair   Chair `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
