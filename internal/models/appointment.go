package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StaffID uint  `json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	// PrimaryServiceID mirrors the first service in the ordered set; older
	// clients of the API still read it.
	PrimaryServiceID uint                 `json:"primary_service_id"`
	PrimaryService   Service              `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"primary_service"`
	Services         []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	Date      time.Time `gorm:"type:date" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`

	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration"`

	Status string `gorm:"size:30;default:'pendiente'" json:"status"`

	Observations string `gorm:"size:500" json:"observations"`

	// CancelReason is set on user cancellation; NoveltyID on a cascade
	// cancellation. The two are mutually exclusive.
	CancelReason string `gorm:"size:500" json:"cancel_reason"`
	NoveltyID    *uint  `json:"novelty_id"`

	FinalizedAt *time.Time `json:"finalized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService is one row of an appointment's ordered service set.
type AppointmentService struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	AppointmentID uint    `gorm:"index" json:"appointment_id"`
	ServiceID     uint    `json:"service_id"`
	Service       Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`
	Position      int     `json:"position"`
}
