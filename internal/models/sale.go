package models

import "time"

// Sale is generated exactly once when an appointment is finalized, with one
// item per service in the appointment's service set.
type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number string `gorm:"size:36;uniqueIndex" json:"number"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StaffID uint  `json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	Total         float64    `json:"total"`
	Status        string     `gorm:"size:20;default:'pendiente'" json:"status"`
	PaymentMethod string     `gorm:"size:20;default:'efectivo'" json:"payment_method"`
	SoldAt        time.Time  `json:"sold_at"`
	Items         []SaleItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Observations string `gorm:"size:500" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"index" json:"sale_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
