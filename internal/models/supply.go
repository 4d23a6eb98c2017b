package models

import "time"

// Supply es un insumo del inventario del spa.
type Supply struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Unit     string `gorm:"size:20" json:"unit"`
	Stock    int    `gorm:"default:0" json:"stock"`

	Status string `gorm:"size:10;default:'activo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
