package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `json:"tenant_id"`
	Tenant   Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         string `gorm:"size:20;default:'admin'" json:"role"`
	Onboarded    bool   `gorm:"default:false" json:"onboarded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
