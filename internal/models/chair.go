package models

import "time"

type Chair struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `json:"branch_id"`

	ChairNumber int     `json:"chair_number"`
	Commission  float64 `gorm:"default:15" json:"commission"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
