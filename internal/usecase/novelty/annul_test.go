package novelty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
)

func TestAnnulReactivatesCascadedAppointments(t *testing.T) {
	repo := seedRepo()

	ap := bookAt(t, repo, 1, "14:00")

	create := newCreate(repo)
	created, err := create.Execute(context.Background(), CreateInput{
		StaffID:     1,
		Date:        "2026-03-10",
		State:       "tardanza",
		ArrivalTime: "15:00",
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.Cascade.Cancelled)

	annul := NewAnnul(repo, NewCascade(repo, nil), nil)
	out, err := annul.Execute(context.Background(), created.Novelty.ID, "registro equivocado")
	require.NoError(t, err)

	assert.Equal(t, "anulada", out.Novelty.State)
	assert.Equal(t, "registro equivocado", out.Novelty.AnnulReason)
	require.NotNil(t, out.Novelty.AnnulledAt)
	assert.Empty(t, out.Novelty.ArrivalTime)
	assert.Equal(t, 1, out.Cascade.Reactivated)

	restored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pendiente", restored.Status)
	assert.Empty(t, restored.CancelReason)
	assert.Nil(t, restored.NoveltyID)
}

func TestAnnulFreesTheDay(t *testing.T) {
	repo := seedRepo()
	create := newCreate(repo)

	created, err := create.Execute(context.Background(), CreateInput{
		StaffID: 1, Date: "2026-03-10", State: "ausente", AbsenceKind: "completa",
	})
	require.NoError(t, err)

	annul := NewAnnul(repo, NewCascade(repo, nil), nil)
	_, err = annul.Execute(context.Background(), created.Novelty.ID, "error de registro")
	require.NoError(t, err)

	// the (staff, date) pair is available again
	_, err = create.Execute(context.Background(), CreateInput{
		StaffID: 1, Date: "2026-03-10", State: "tardanza", ArrivalTime: "11:00",
	})
	assert.NoError(t, err)
}

func TestAnnulRequiresReason(t *testing.T) {
	repo := seedRepo()
	create := newCreate(repo)

	created, err := create.Execute(context.Background(), CreateInput{
		StaffID: 1, Date: "2026-03-10", State: "tardanza", ArrivalTime: "11:00",
	})
	require.NoError(t, err)

	annul := NewAnnul(repo, NewCascade(repo, nil), nil)
	_, err = annul.Execute(context.Background(), created.Novelty.ID, "")

	var fieldErr *schedule.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "annul_reason", fieldErr.Field)
}

func TestAnnulTwiceRejected(t *testing.T) {
	repo := seedRepo()
	create := newCreate(repo)

	created, err := create.Execute(context.Background(), CreateInput{
		StaffID: 1, Date: "2026-03-10", State: "tardanza", ArrivalTime: "11:00",
	})
	require.NoError(t, err)

	annul := NewAnnul(repo, NewCascade(repo, nil), nil)
	_, err = annul.Execute(context.Background(), created.Novelty.ID, "primera vez")
	require.NoError(t, err)

	_, err = annul.Execute(context.Background(), created.Novelty.ID, "segunda vez")
	assertBusinessCode(t, err, "novelty_annulled")
}

func TestAnnulUnknownNovelty(t *testing.T) {
	repo := seedRepo()
	annul := NewAnnul(repo, NewCascade(repo, nil), nil)

	_, err := annul.Execute(context.Background(), 404, "no existe")
	assertBusinessCode(t, err, "novelty_not_found")
}

// Full sequence: book, blocked duplicate, lateness cascade, annulment.
func TestLatenessLifecycle(t *testing.T) {
	repo := seedRepo()

	ap := bookAt(t, repo, 1, "14:00")

	// the slot is taken for another client now
	create := newCreate(repo)
	_, err := create.Execute(context.Background(), CreateInput{
		StaffID:     1,
		Date:        "2026-03-10",
		State:       "tardanza",
		ArrivalTime: "15:00",
	})
	require.NoError(t, err)

	cancelled, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	require.Equal(t, "cancelada_por_novedad", cancelled.Status)

	novelties, err := repo.ListNovelties(
		context.Background(), 1, cancelled.Date, cancelled.Date, "tardanza",
	)
	require.NoError(t, err)
	require.Len(t, novelties, 1)

	annul := NewAnnul(repo, NewCascade(repo, nil), nil)
	out, err := annul.Execute(context.Background(), novelties[0].ID, "la manicurista llegó a tiempo")
	require.NoError(t, err)
	require.Equal(t, 1, out.Cascade.Reactivated)

	restored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pendiente", restored.Status)
}
