package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
	"github.com/winespa/spa-scheduler/internal/domain/schedule/scheduletest"
	"github.com/winespa/spa-scheduler/internal/models"
)

func bookTestAppointment(t *testing.T, repo *scheduletest.Repository) *models.Appointment {
	t.Helper()

	book := NewBook(repo, testWindow(), nil)
	ap, err := book.Execute(context.Background(), BookInput{
		ClientID:   1,
		StaffID:    1,
		ServiceIDs: []uint{1, 2},
		Date:       "2026-03-10",
		Time:       "14:00",
	})
	require.NoError(t, err)
	return ap
}

func TestTransitionStart(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewTransition(repo, nil)
	got, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusInProcess,
	})
	require.NoError(t, err)
	assert.Equal(t, "en_proceso", got.Status)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "en_proceso", stored.Status)
}

func TestTransitionFinalizeCreatesSaleOnce(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewTransition(repo, nil)

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusInProcess,
	})
	require.NoError(t, err)

	got, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusFinalized,
	})
	require.NoError(t, err)
	assert.Equal(t, "finalizada", got.Status)
	require.NotNil(t, got.FinalizedAt)

	require.Len(t, repo.Sales, 1)
	sale := repo.Sales[0]
	assert.Equal(t, ap.ID, sale.AppointmentID)
	assert.Equal(t, ap.ClientID, sale.ClientID)
	assert.Equal(t, ap.StaffID, sale.StaffID)
	assert.Equal(t, float64(70000), sale.Total)
	assert.NotEmpty(t, sale.Number)
	assert.Len(t, sale.Items, 2)

	// finalizada is terminal: the second attempt fails and no second sale
	// appears
	_, err = uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusFinalized,
	})
	assert.Error(t, err)
	assert.Len(t, repo.Sales, 1)
}

func TestTransitionFinalizeFromPendingRejected(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewTransition(repo, nil)
	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusFinalized,
	})

	var transErr *schedule.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Empty(t, repo.Sales)
}

func TestTransitionCancel(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewTransition(repo, nil)

	// reason is mandatory
	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusCancelled,
	})
	var fieldErr *schedule.FieldError
	require.ErrorAs(t, err, &fieldErr)

	got, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: ap.ID,
		Target:        schedule.StatusCancelled,
		CancelReason:  "el cliente no puede asistir",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelada", got.Status)
	assert.Equal(t, "el cliente no puede asistir", got.CancelReason)
}

func TestTransitionCascadeStatesRejected(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewTransition(repo, nil)

	for _, target := range []schedule.Status{
		schedule.StatusPending,
		schedule.StatusCancelledByNovelty,
	} {
		_, err := uc.Execute(context.Background(), TransitionInput{
			AppointmentID: ap.ID,
			Target:        target,
		})
		var transErr *schedule.InvalidTransitionError
		assert.ErrorAs(t, err, &transErr, "target %s", target)
	}
}

func TestTransitionUnknownAppointment(t *testing.T) {
	repo := seedRepo()
	uc := NewTransition(repo, nil)

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 404,
		Target:        schedule.StatusInProcess,
	})
	assertBusinessCode(t, err, "appointment_not_found")
}
