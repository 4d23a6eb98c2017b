package models

import "time"

type Supplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	NIT     string `gorm:"size:20;uniqueIndex" json:"nit"`
	Phone   string `gorm:"size:15" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:200" json:"address"`

	Status string `gorm:"size:10;default:'activo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
