package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type TransitionInput struct {
	AppointmentID uint
	Target        schedule.Status

	// CancelReason is required when Target is cancelada.
	CancelReason string
}

// ======================================================
// USE CASE
// ======================================================

// Transition applies a user-requested status change. The dispatch is an
// exhaustive switch over the target status; cancelada_por_novedad and the
// return to pendiente belong to the novelty cascade and are not reachable
// from here.
type Transition struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewTransition(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *Transition {
	return &Transition{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Transition) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("appointment_not_found", "cita no encontrada")
	}

	switch in.Target {
	case schedule.StatusInProcess:
		if err := schedule.Start(ap); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

	case schedule.StatusFinalized:
		now := timezone.Now()
		if err := schedule.Finalize(ap, now); err != nil {
			return nil, err
		}
		// The sale rides in the same transaction as the status change; the
		// repository skips it if one already references this appointment.
		if err := uc.repo.FinalizeAppointment(ctx, ap, buildSale(ap)); err != nil {
			return nil, err
		}

	case schedule.StatusCancelled:
		if err := schedule.Cancel(ap, in.CancelReason); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

	case schedule.StatusPending, schedule.StatusCancelledByNovelty:
		return nil, &schedule.InvalidTransitionError{
			From: schedule.Status(ap.Status),
			To:   in.Target,
		}

	default:
		return nil, &schedule.InvalidTransitionError{
			From: schedule.Status(ap.Status),
			To:   in.Target,
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_" + string(in.Target),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// buildSale creates the sale for a finalized appointment: one item per
// service in the set, each at the service's current price.
func buildSale(ap *models.Appointment) *models.Sale {
	items := make([]models.SaleItem, 0, len(ap.Services))
	for _, row := range ap.Services {
		items = append(items, models.SaleItem{
			ServiceID: row.ServiceID,
			UnitPrice: row.Service.Price,
			Subtotal:  row.Service.Price,
		})
	}

	soldAt := timezone.Now()
	if ap.FinalizedAt != nil {
		soldAt = *ap.FinalizedAt
	}

	return &models.Sale{
		Number:        uuid.NewString(),
		AppointmentID: ap.ID,
		ClientID:      ap.ClientID,
		StaffID:       ap.StaffID,
		Total:         ap.TotalPrice,
		Status:        "pendiente",
		PaymentMethod: "efectivo",
		SoldAt:        soldAt,
		Items:         items,
		Observations:  fmt.Sprintf("Venta generada automáticamente desde la cita #%d", ap.ID),
	}
}
