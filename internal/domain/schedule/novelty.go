package schedule

import (
	"fmt"

	"github.com/winespa/spa-scheduler/internal/models"
)

// ===============================
// Novelty States
// ===============================

type NoveltyState string

const (
	NoveltyNormal   NoveltyState = "normal"
	NoveltyLateness NoveltyState = "tardanza"
	NoveltyAbsence  NoveltyState = "ausente"
	NoveltyVacation NoveltyState = "vacaciones"
	NoveltyLeave    NoveltyState = "incapacidad"
	NoveltyShift    NoveltyState = "horario"
	NoveltyAnnulled NoveltyState = "anulada"
)

const (
	AbsenceFullDay = "completa"
	AbsenceByHours = "por_horas"

	ShiftOpening = "apertura"
	ShiftClosing = "cierre"
)

// Label is the display name used in messages to clients.
func (s NoveltyState) Label() string {
	switch s {
	case NoveltyNormal:
		return "Normal"
	case NoveltyLateness:
		return "Tardanza"
	case NoveltyAbsence:
		return "Ausente"
	case NoveltyVacation:
		return "Vacaciones"
	case NoveltyLeave:
		return "Incapacidad"
	case NoveltyShift:
		return "Horario"
	case NoveltyAnnulled:
		return "Anulada"
	}
	return string(s)
}

// FieldError is a validation failure tied to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateNovelty enforces the per-state field combinations and the
// permitted clock range. Lateness and absence fields are mutually exclusive.
func ValidateNovelty(n *models.Novelty, w Window) error {
	switch NoveltyState(n.State) {
	case NoveltyLateness:
		if n.ArrivalTime == "" {
			return &FieldError{Field: "arrival_time", Message: "la hora de entrada es requerida para tardanza"}
		}
		if n.AbsenceKind != "" || n.AbsenceStart != "" || n.AbsenceEnd != "" {
			return &FieldError{Field: "absence_kind", Message: "los campos de ausencia no aplican para tardanza"}
		}

	case NoveltyAbsence:
		if n.ArrivalTime != "" {
			return &FieldError{Field: "arrival_time", Message: "la hora de entrada no aplica para ausencia"}
		}
		switch n.AbsenceKind {
		case AbsenceFullDay:
			if n.AbsenceStart != "" || n.AbsenceEnd != "" {
				return &FieldError{Field: "absence_start", Message: "las horas de ausencia no aplican para día completo"}
			}
		case AbsenceByHours:
			if n.AbsenceStart == "" || n.AbsenceEnd == "" {
				return &FieldError{Field: "absence_start", Message: "hora de inicio y fin son requeridas para ausencia por horas"}
			}
		default:
			return &FieldError{Field: "absence_kind", Message: "el tipo de ausencia es requerido"}
		}

	case NoveltyVacation:
		if n.VacationDays == nil || *n.VacationDays < 7 {
			return &FieldError{Field: "vacation_days", Message: "las vacaciones deben ser mínimo de 7 días"}
		}
		if *n.VacationDays%7 != 0 {
			return &FieldError{Field: "vacation_days", Message: "las vacaciones deben tomarse en semanas completas"}
		}

	case NoveltyLeave:
		if n.SupportDocKey == "" {
			return &FieldError{Field: "support_doc", Message: "debes adjuntar el soporte de la incapacidad"}
		}

	case NoveltyShift:
		if n.Shift != ShiftOpening && n.Shift != ShiftClosing {
			return &FieldError{Field: "shift", Message: "debes seleccionar un turno (apertura o cierre)"}
		}

	case NoveltyNormal, NoveltyAnnulled:
		if n.ArrivalTime != "" || n.AbsenceKind != "" || n.AbsenceStart != "" || n.AbsenceEnd != "" {
			return &FieldError{Field: "state", Message: "no aplican campos de tardanza o ausencia para este estado"}
		}

	default:
		return &FieldError{Field: "state", Message: fmt.Sprintf("estado de novedad desconocido: %q", n.State)}
	}

	return validateNoveltyHours(n, w)
}

func validateNoveltyHours(n *models.Novelty, w Window) error {
	check := func(field, value string) (Clock, error) {
		c, err := ParseClock(value)
		if err != nil {
			return 0, &FieldError{Field: field, Message: err.Error()}
		}
		if !w.InPermittedRange(c) {
			return 0, &FieldError{
				Field:   field,
				Message: fmt.Sprintf("la hora debe estar entre %s y %s", w.Earliest, w.Latest),
			}
		}
		return c, nil
	}

	if n.ArrivalTime != "" {
		if _, err := check("arrival_time", n.ArrivalTime); err != nil {
			return err
		}
	}

	if n.AbsenceStart != "" || n.AbsenceEnd != "" {
		start, err := check("absence_start", n.AbsenceStart)
		if err != nil {
			return err
		}
		end, err := check("absence_end", n.AbsenceEnd)
		if err != nil {
			return err
		}
		if start >= end {
			return &FieldError{Field: "absence_start", Message: "la hora de inicio debe ser anterior a la hora de fin"}
		}
	}

	return nil
}

// IsAnnulled reports whether the novelty has been annulled and no longer
// counts against the staff member's schedule.
func IsAnnulled(n *models.Novelty) bool {
	return NoveltyState(n.State) == NoveltyAnnulled
}

// CausesCascade reports whether creating this novelty must re-evaluate the
// staff member's existing appointments. Vacation, leave and shift records do
// not block time slots; they only inform the day-level views.
func CausesCascade(n *models.Novelty) bool {
	s := NoveltyState(n.State)
	return s == NoveltyAbsence || s == NoveltyLateness
}

// NoveltyBlocks reports whether the novelty blocks the given interval.
// Full-day absence blocks everything; by-hours absence blocks on half-open
// overlap; lateness blocks any interval that starts before the arrival time.
func NoveltyBlocks(n *models.Novelty, iv Interval) bool {
	switch NoveltyState(n.State) {
	case NoveltyAbsence:
		if n.AbsenceKind == AbsenceFullDay {
			return true
		}
		start, err1 := ParseClock(n.AbsenceStart)
		end, err2 := ParseClock(n.AbsenceEnd)
		if err1 != nil || err2 != nil {
			return false
		}
		return iv.Overlaps(Interval{Start: start, End: end})

	case NoveltyLateness:
		arrival, err := ParseClock(n.ArrivalTime)
		if err != nil {
			return false
		}
		return iv.Start < arrival
	}
	return false
}

// NoveltyBlockReason is the human-readable reason attached to blocked slots
// and to cascade cancellations.
func NoveltyBlockReason(n *models.Novelty) string {
	obs := n.Observations
	if obs == "" {
		obs = "Sin motivo"
	}

	switch NoveltyState(n.State) {
	case NoveltyAbsence:
		if n.AbsenceKind == AbsenceFullDay {
			return fmt.Sprintf("Ausencia completa: %s", obs)
		}
		return fmt.Sprintf("Ausencia por horas: %s", obs)
	case NoveltyLateness:
		return fmt.Sprintf("Tardanza: llega a las %s", n.ArrivalTime)
	}
	return ""
}
