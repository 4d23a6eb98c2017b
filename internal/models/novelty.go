package models

import "time"

// Novelty records a deviation from a staff member's normal schedule on a
// single date. At most one non-annulled row may exist per (staff, date).
type Novelty struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `gorm:"index:idx_novelty_staff_date" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"staff"`

	Date  time.Time `gorm:"type:date;index:idx_novelty_staff_date" json:"date"`
	State string    `gorm:"size:20;default:'normal'" json:"state"`

	// tardanza
	ArrivalTime string `gorm:"size:5" json:"arrival_time"`

	// ausente
	AbsenceKind  string `gorm:"size:20" json:"absence_kind"`
	AbsenceStart string `gorm:"size:5" json:"absence_start"`
	AbsenceEnd   string `gorm:"size:5" json:"absence_end"`

	// vacaciones
	VacationDays *int `json:"vacation_days"`

	// incapacidad: object key of the uploaded support document
	SupportDocKey string `gorm:"size:255" json:"support_doc_key"`

	// horario
	Shift string `gorm:"size:20" json:"shift"`

	Observations string `gorm:"size:500" json:"observations"`

	AnnulReason string     `gorm:"size:500" json:"annul_reason"`
	AnnulledAt  *time.Time `json:"annulled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
