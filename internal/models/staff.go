package models

import "time"

// Staff es la manicurista que atiende citas.
type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:200;not null" json:"name"`
	DocumentType string `gorm:"size:2" json:"document_type"`
	Document     string `gorm:"size:20;uniqueIndex" json:"document"`
	Specialty    string `gorm:"size:50" json:"specialty"`
	Phone        string `gorm:"size:15" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:200" json:"address"`

	Status    string     `gorm:"size:10;default:'activo'" json:"status"`
	Available bool       `gorm:"default:true" json:"available"`
	HiredAt   *time.Time `gorm:"type:date" json:"hired_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) IsActive() bool {
	return s.Status == "activo"
}
