package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityOverlaysAppointments(t *testing.T) {
	repo := seedRepo()
	ap := bookTestAppointment(t, repo) // 14:00, 90 minutes

	uc := NewGetAvailability(repo, testWindow())
	slots, err := uc.Execute(context.Background(), ap.StaffID, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 20)

	for _, s := range slots {
		start := s.Interval.Start
		booked := start >= 840 && start < 930 // 14:00-15:30
		if booked {
			assert.False(t, s.Available, "slot %s overlaps the appointment", s.Interval)
			assert.Equal(t, "Cita agendada con Ana", s.Reason)
		} else {
			assert.True(t, s.Available, "slot %s", s.Interval)
		}
	}
}

func TestGetAvailabilityUnknownStaff(t *testing.T) {
	uc := NewGetAvailability(seedRepo(), testWindow())
	_, err := uc.Execute(context.Background(), 99, "2026-03-10")
	assertBusinessCode(t, err, "staff_not_found")
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	uc := NewGetAvailability(seedRepo(), testWindow())
	_, err := uc.Execute(context.Background(), 1, "10-03-2026")
	assertBusinessCode(t, err, "invalid_date")
}
