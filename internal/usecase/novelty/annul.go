package novelty

import (
	"context"

	"github.com/winespa/spa-scheduler/internal/audit"
	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/httperr"
	"github.com/winespa/spa-scheduler/internal/models"
	"github.com/winespa/spa-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// Annul marks a novelty as anulada and reactivates the appointments it had
// cancelled. An annulled novelty frees the (staff, date) pair: a new
// novelty can be registered for the same day afterwards.
type Annul struct {
	repo    schedule.Repository
	cascade *Cascade
	audit   *audit.Dispatcher
}

func NewAnnul(
	repo schedule.Repository,
	cascade *Cascade,
	audit *audit.Dispatcher,
) *Annul {
	return &Annul{
		repo:    repo,
		cascade: cascade,
		audit:   audit,
	}
}

// AnnulOutput carries the updated novelty and what the cascade undid.
type AnnulOutput struct {
	Novelty *models.Novelty `json:"novelty"`
	Cascade CascadeResult   `json:"cascade"`
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Annul) Execute(
	ctx context.Context,
	noveltyID uint,
	reason string,
) (*AnnulOutput, error) {

	if reason == "" {
		return nil, &schedule.FieldError{
			Field:   "annul_reason",
			Message: "el motivo de anulación es requerido",
		}
	}

	n, err := uc.repo.GetNovelty(ctx, noveltyID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("novelty_not_found", "novedad no encontrada")
	}
	if schedule.IsAnnulled(n) {
		return nil, httperr.ErrBusinessMsg("novelty_annulled", "la novedad ya está anulada")
	}

	causedCascade := schedule.CausesCascade(n)

	uc.markAnnulled(n, reason)

	if err := uc.repo.UpdateNovelty(ctx, n); err != nil {
		return nil, err
	}

	out := &AnnulOutput{Novelty: n}
	if causedCascade {
		out.Cascade = uc.cascade.ReactivateCancelled(ctx, n)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "novelty_annulled",
		Entity:   "novelty",
		EntityID: &n.ID,
		Metadata: map[string]any{
			"reason":      reason,
			"reactivated": out.Cascade.Reactivated,
		},
	})

	return out, nil
}

// markAnnulled clears the schedule-affecting fields so the annulled row no
// longer describes a blockage, only that one existed.
func (uc *Annul) markAnnulled(n *models.Novelty, reason string) {
	now := timezone.Now()

	n.State = string(schedule.NoveltyAnnulled)
	n.ArrivalTime = ""
	n.AbsenceKind = ""
	n.AbsenceStart = ""
	n.AbsenceEnd = ""
	n.AnnulReason = reason
	n.AnnulledAt = &now
}
