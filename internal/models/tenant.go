package models

import "time"

type Tenant struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ShopName string `gorm:"size:100;not null" json:"shop_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
