package novelty

import (
	"context"
	"fmt"
	"log"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/notify"
)

// ======================================================
// CASCADE
// ======================================================

// CascadeFailure records one appointment the cascade could not process.
type CascadeFailure struct {
	AppointmentID uint   `json:"appointment_id"`
	Reason        string `json:"reason"`
}

// CascadeResult summarizes a cascade pass. Failures never abort the loop;
// every remaining appointment is still visited.
type CascadeResult struct {
	Cancelled   int              `json:"cancelled"`
	Reactivated int              `json:"reactivated"`
	Failures    []CascadeFailure `json:"failures,omitempty"`
}

// Cascade re-evaluates a staff member's appointments against a novelty:
// cancelling the ones a new lateness or absence blocks, and reactivating
// the ones an annulment releases.
type Cascade struct {
	repo   schedule.Repository
	notify *notify.Dispatcher
}

func NewCascade(repo schedule.Repository, notify *notify.Dispatcher) *Cascade {
	return &Cascade{
		repo:   repo,
		notify: notify,
	}
}

// CancelAffected moves every active appointment of the novelty's day that
// the novelty blocks into cancelada_por_novedad. Appointments it does not
// block are left untouched.
func (uc *Cascade) CancelAffected(
	ctx context.Context,
	n *models.Novelty,
) CascadeResult {

	var result CascadeResult

	appointments, err := uc.repo.ListActiveAppointmentsForDay(ctx, n.StaffID, n.Date)
	if err != nil {
		result.Failures = append(result.Failures, CascadeFailure{
			Reason: fmt.Sprintf("no se pudieron listar las citas del día: %v", err),
		})
		return result
	}

	reason := fmt.Sprintf(
		"Novedad de manicurista: %s - %s",
		schedule.NoveltyState(n.State).Label(),
		observations(n),
	)

	for i := range appointments {
		ap := &appointments[i]

		iv, err := schedule.AppointmentInterval(ap)
		if err != nil {
			result.Failures = append(result.Failures, CascadeFailure{
				AppointmentID: ap.ID,
				Reason:        err.Error(),
			})
			continue
		}
		if !schedule.NoveltyBlocks(n, iv) {
			continue
		}

		if err := schedule.CancelByNovelty(ap, n.ID, reason); err != nil {
			result.Failures = append(result.Failures, CascadeFailure{
				AppointmentID: ap.ID,
				Reason:        err.Error(),
			})
			continue
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			result.Failures = append(result.Failures, CascadeFailure{
				AppointmentID: ap.ID,
				Reason:        err.Error(),
			})
			continue
		}

		result.Cancelled++
		uc.notifyCancelled(ap, reason)
	}

	if len(result.Failures) > 0 {
		log.Printf("cascade: %d cita(s) no procesadas para la novedad %d", len(result.Failures), n.ID)
	}
	return result
}

// ReactivateCancelled returns to pendiente every appointment this novelty
// had cancelled. Called after the novelty is annulled.
func (uc *Cascade) ReactivateCancelled(
	ctx context.Context,
	n *models.Novelty,
) CascadeResult {

	var result CascadeResult

	appointments, err := uc.repo.ListAppointmentsByNovelty(ctx, n.ID)
	if err != nil {
		result.Failures = append(result.Failures, CascadeFailure{
			Reason: fmt.Sprintf("no se pudieron listar las citas canceladas: %v", err),
		})
		return result
	}

	for i := range appointments {
		ap := &appointments[i]

		if err := schedule.Reactivate(ap); err != nil {
			result.Failures = append(result.Failures, CascadeFailure{
				AppointmentID: ap.ID,
				Reason:        err.Error(),
			})
			continue
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			result.Failures = append(result.Failures, CascadeFailure{
				AppointmentID: ap.ID,
				Reason:        err.Error(),
			})
			continue
		}

		result.Reactivated++
		uc.notifyReactivated(ap)
	}

	if len(result.Failures) > 0 {
		log.Printf("cascade: %d cita(s) no reactivadas para la novedad %d", len(result.Failures), n.ID)
	}
	return result
}

func (uc *Cascade) notifyCancelled(ap *models.Appointment, reason string) {
	uc.notify.Dispatch(notify.Message{
		To:      ap.Client.Email,
		Name:    ap.Client.Name,
		Subject: "Tu cita ha sido cancelada",
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu cita del %s a las %s fue cancelada.\nMotivo: %s\n\nPor favor agenda nuevamente.",
			ap.Client.Name,
			ap.Date.Format("2006-01-02"),
			ap.StartTime,
			reason,
		),
	})
}

func (uc *Cascade) notifyReactivated(ap *models.Appointment) {
	uc.notify.Dispatch(notify.Message{
		To:      ap.Client.Email,
		Name:    ap.Client.Name,
		Subject: "Tu cita ha sido reactivada",
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu cita del %s a las %s fue reactivada y te esperamos como estaba agendada.",
			ap.Client.Name,
			ap.Date.Format("2006-01-02"),
			ap.StartTime,
		),
	})
}

func observations(n *models.Novelty) string {
	if n.Observations == "" {
		return "Sin motivo"
	}
	return n.Observations
}
