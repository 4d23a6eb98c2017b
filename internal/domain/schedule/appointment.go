package schedule

import (
	"time"

	"github.com/winespa/spa-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Every status mutation of an appointment goes through one of these; nothing
// else in the codebase assigns Appointment.Status directly.

// Start moves a pending appointment into en_proceso.
func Start(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusInProcess); err != nil {
		return err
	}
	ap.Status = string(StatusInProcess)
	return nil
}

// Finalize closes the appointment. The finalization timestamp is set once:
// re-finalizing an already stamped appointment is rejected by the table
// before this point is reached.
func Finalize(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusFinalized); err != nil {
		return err
	}
	ap.Status = string(StatusFinalized)
	if ap.FinalizedAt == nil {
		ap.FinalizedAt = &now
	}
	return nil
}

// Cancel is the user-initiated cancellation; a reason is mandatory.
func Cancel(ap *models.Appointment, reason string) error {
	if reason == "" {
		return &FieldError{Field: "cancel_reason", Message: "el motivo de cancelación es requerido"}
	}
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	ap.CancelReason = reason
	return nil
}

// CancelByNovelty is the cascade cancellation. No user reason is required;
// the appointment records which novelty forced it out instead.
func CancelByNovelty(ap *models.Appointment, noveltyID uint, reason string) error {
	if err := CanTransition(Status(ap.Status), StatusCancelledByNovelty); err != nil {
		return err
	}
	ap.Status = string(StatusCancelledByNovelty)
	ap.CancelReason = reason
	ap.NoveltyID = &noveltyID
	return nil
}

// Reactivate undoes a novelty cancellation after the novelty is annulled.
// It is the only way out of cancelada_por_novedad.
func Reactivate(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusPending); err != nil {
		return err
	}
	ap.Status = string(StatusPending)
	ap.CancelReason = ""
	ap.NoveltyID = nil
	return nil
}

// ComputeTotals sums price and duration over the service set. Command
// handlers call it whenever the set changes; totals are never recomputed as
// a side effect of persistence.
func ComputeTotals(services []models.Service) (price float64, duration int) {
	for _, s := range services {
		price += s.Price
		duration += s.DurationMin
	}
	return price, duration
}

// AppointmentInterval is the [start, start+duration) block the appointment
// occupies, used by the cascade overlap tests.
func AppointmentInterval(ap *models.Appointment) (Interval, error) {
	start, err := ParseClock(ap.StartTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start.Add(ap.TotalDuration)}, nil
}
