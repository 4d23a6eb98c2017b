package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo   schedule.Repository
	window schedule.Window
}

func NewGetAvailability(
	repo schedule.Repository,
	window schedule.Window,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		window: window,
	}
}

// Execute resolves the day's grid against the staff member's novelty and
// then overlays the already-booked appointments, so the caller sees every
// slot with the reason it is unavailable.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	staffID uint,
	dateStr string,
) ([]schedule.Slot, error) {

	if _, err := uc.repo.GetStaff(ctx, staffID); err != nil {
		return nil, httperr.ErrBusinessMsg("staff_not_found", "manicurista no encontrada")
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrBusinessMsg("invalid_date", "fecha inválida, use YYYY-MM-DD")
	}

	novelty, err := uc.repo.ActiveNoveltyForDay(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	slots := schedule.Resolve(uc.window, novelty)

	appointments, err := uc.repo.ListActiveAppointmentsForDay(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	for _, ap := range appointments {
		iv, err := schedule.AppointmentInterval(&ap)
		if err != nil {
			continue
		}
		for i := range slots {
			if slots[i].Available && slots[i].Interval.Overlaps(iv) {
				slots[i].Available = false
				slots[i].Reason = fmt.Sprintf("Cita agendada con %s", ap.Client.Name)
			}
		}
	}

	return slots, nil
}
