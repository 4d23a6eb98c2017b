package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/domain/schedule"
)

func strPtr(s string) *string { return &s }
func uintPtr(n uint) *uint    { return &n }

func TestRescheduleMove(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewReschedule(repo, testWindow(), nil)
	got, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Time:          strPtr("16:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "16:00", got.StartTime)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "16:00", stored.StartTime)
}

func TestRescheduleKeepingSlotDoesNotConflictWithItself(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewReschedule(repo, testWindow(), nil)
	_, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Observations:  strPtr("trae su propio esmalte"),
	})
	assert.NoError(t, err)
}

func TestRescheduleIntoTakenSlot(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	book := NewBook(repo, testWindow(), nil)
	_, err := book.Execute(context.Background(), BookInput{
		ClientID: 2, StaffID: 1, ServiceIDs: []uint{1}, Date: "2026-03-10", Time: "16:00",
	})
	require.NoError(t, err)

	uc := NewReschedule(repo, testWindow(), nil)
	_, err = uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Time:          strPtr("16:00"),
	})
	assertBusinessCode(t, err, "already_booked")
}

func TestRescheduleOutsideWindow(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewReschedule(repo, testWindow(), nil)
	_, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Time:          strPtr("21:00"),
	})
	assertBusinessCode(t, err, "outside_window")
}

func TestRescheduleToInactiveStaff(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewReschedule(repo, testWindow(), nil)
	_, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		StaffID:       uintPtr(3),
	})
	assertBusinessCode(t, err, "staff_inactive")
}

func TestRescheduleServicesRebuildTotals(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	uc := NewReschedule(repo, testWindow(), nil)
	got, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		ServiceIDs:    []uint{2},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(25000), got.TotalPrice)
	assert.Equal(t, 30, got.TotalDuration)
	assert.Equal(t, uint(2), got.PrimaryServiceID)
	require.Len(t, got.Services, 1)
}

func TestRescheduleClosedAppointmentRejected(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo)

	require.NoError(t, schedule.Cancel(ap, "cerrada"))
	require.NoError(t, repo.UpdateAppointment(context.Background(), ap))

	uc := NewReschedule(repo, testWindow(), nil)
	_, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID,
		Time:          strPtr("16:00"),
	})
	assertBusinessCode(t, err, "appointment_not_editable")
}
