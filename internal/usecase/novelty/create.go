package novelty

import (
	"context"
	"fmt"
	"time"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	StaffID uint
	Date    string
	State   string

	ArrivalTime string

	AbsenceKind  string
	AbsenceStart string
	AbsenceEnd   string

	VacationDays *int

	// SupportDocKey is set by the handler after uploading the leave
	// document; empty for every other state.
	SupportDocKey string

	Shift string

	Observations string
}

// ======================================================
// USE CASE
// ======================================================

// Create registers the novelty for (staff, date) and, when the state blocks
// time slots, cancels the appointments it collides with. The uniqueness of
// the non-annulled novelty per day is enforced by the repository under lock.
type Create struct {
	repo    schedule.Repository
	window  schedule.Window
	cascade *Cascade
	audit   *audit.Dispatcher
}

func NewCreate(
	repo schedule.Repository,
	window schedule.Window,
	cascade *Cascade,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:    repo,
		window:  window,
		cascade: cascade,
		audit:   audit,
	}
}

// CreateOutput carries the stored novelty and what the cascade did.
type CreateOutput struct {
	Novelty *models.Novelty `json:"novelty"`
	Cascade CascadeResult   `json:"cascade"`
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*CreateOutput, error) {

	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("staff_not_found", "manicurista no encontrada")
	}
	if !staff.IsActive() {
		return nil, httperr.ErrBusinessMsg(
			"staff_inactive",
			fmt.Sprintf("la manicurista %s no está activa", staff.Name),
		)
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	n := &models.Novelty{
		StaffID:       in.StaffID,
		Date:          date,
		State:         in.State,
		ArrivalTime:   in.ArrivalTime,
		AbsenceKind:   in.AbsenceKind,
		AbsenceStart:  in.AbsenceStart,
		AbsenceEnd:    in.AbsenceEnd,
		VacationDays:  in.VacationDays,
		SupportDocKey: in.SupportDocKey,
		Shift:         in.Shift,
		Observations:  in.Observations,
	}

	if schedule.NoveltyState(n.State) == schedule.NoveltyAnnulled {
		return nil, &schedule.FieldError{
			Field:   "state",
			Message: "una novedad no puede crearse anulada",
		}
	}

	if err := schedule.ValidateNovelty(n, uc.window); err != nil {
		return nil, err
	}

	// Unicidad por (manicurista, fecha), atómica con el insert
	if err := uc.repo.CreateNovelty(ctx, n); err != nil {
		return nil, err
	}

	out := &CreateOutput{Novelty: n}
	if schedule.CausesCascade(n) {
		out.Cascade = uc.cascade.CancelAffected(ctx, n)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "novelty_created",
		Entity:   "novelty",
		EntityID: &n.ID,
		Metadata: map[string]any{
			"state":     n.State,
			"cancelled": out.Cascade.Cancelled,
		},
	})

	return out, nil
}

func parseDate(dateStr string) (time.Time, error) {
	loc := timezone.Location("")

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessMsg("invalid_date", "fecha inválida")
	}
	return day, nil
}
