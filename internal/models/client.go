package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DocumentType string `gorm:"size:2" json:"document_type"`
	Document     string `gorm:"size:20;uniqueIndex" json:"document"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:15" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:200" json:"address"`
	Gender       string `gorm:"size:2;default:'N'" json:"gender"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
