package appointment

import (
	"context"
	"fmt"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// RescheduleInput carries only the fields being changed; nil means keep.
type RescheduleInput struct {
	AppointmentID uint

	StaffID      *uint
	Date         *string
	Time         *string
	ServiceIDs   []uint
	Observations *string
}

// ======================================================
// USE CASE
// ======================================================

type Reschedule struct {
	repo   schedule.Repository
	window schedule.Window
	audit  *audit.Dispatcher
}

func NewReschedule(
	repo schedule.Repository,
	window schedule.Window,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:   repo,
		window: window,
		audit:  audit,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("appointment_not_found", "cita no encontrada")
	}

	if !schedule.Status(ap.Status).IsActive() {
		return nil, httperr.ErrBusinessMsg(
			"appointment_not_editable",
			fmt.Sprintf("una cita en estado %s no se puede modificar", ap.Status),
		)
	}

	critical := false

	if in.StaffID != nil && *in.StaffID != ap.StaffID {
		ap.StaffID = *in.StaffID
		critical = true
	}

	dateStr := ap.Date.Format("2006-01-02")
	timeStr := ap.StartTime
	if in.Date != nil && *in.Date != dateStr {
		dateStr = *in.Date
		critical = true
	}
	if in.Time != nil && *in.Time != timeStr {
		timeStr = *in.Time
		critical = true
	}

	date, startAt, err := parseDateTime(dateStr, timeStr)
	if err != nil {
		return nil, err
	}
	ap.Date = date
	ap.StartTime = startAt.String()

	// Moving the appointment re-runs the same ordered checks as booking.
	if critical {
		staff, err := uc.repo.GetStaff(ctx, ap.StaffID)
		if err != nil {
			return nil, httperr.ErrBusinessMsg("staff_not_found", "manicurista no encontrada")
		}
		if !staff.IsActive() {
			return nil, httperr.ErrBusinessMsg(
				"staff_inactive",
				fmt.Sprintf("la manicurista %s no está activa", staff.Name),
			)
		}

		if !uc.window.Contains(startAt) {
			return nil, httperr.ErrBusinessMsg(
				"outside_window",
				fmt.Sprintf("la hora debe estar entre %s y %s", uc.window.Open, uc.window.Close),
			)
		}

		novelty, err := uc.repo.ActiveNoveltyForDay(ctx, ap.StaffID, date)
		if err != nil {
			return nil, err
		}
		if novelty != nil {
			if slot, ok := uc.window.SlotAt(startAt); ok && schedule.NoveltyBlocks(novelty, slot) {
				return nil, httperr.ErrBusinessMsg("slot_blocked", schedule.NoveltyBlockReason(novelty))
			}
		}
	}

	if in.ServiceIDs != nil {
		services, err := resolveServices(ctx, uc.repo, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		ap.TotalPrice, ap.TotalDuration = schedule.ComputeTotals(services)
		ap.PrimaryServiceID = services[0].ID
		ap.Services = serviceRows(ap.ID, services)
	}

	if in.Observations != nil {
		ap.Observations = *in.Observations
	}

	// Conflict checks 4 y 5 excluding the appointment itself, atomic with
	// the save.
	if err := uc.repo.SaveAppointmentChecked(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
