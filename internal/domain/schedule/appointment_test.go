package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/models"
)

func TestStart(t *testing.T) {
	ap := &models.Appointment{Status: "pendiente"}
	require.NoError(t, Start(ap))
	assert.Equal(t, "en_proceso", ap.Status)

	assert.Error(t, Start(ap))
}

func TestFinalizeStampsOnce(t *testing.T) {
	first := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	ap := &models.Appointment{Status: "en_proceso"}
	require.NoError(t, Finalize(ap, first))
	assert.Equal(t, "finalizada", ap.Status)
	require.NotNil(t, ap.FinalizedAt)
	assert.Equal(t, first, *ap.FinalizedAt)

	// terminal: re-finalizing is rejected and the stamp is untouched
	err := Finalize(ap, first.Add(time.Hour))
	assert.Error(t, err)
	assert.Equal(t, first, *ap.FinalizedAt)
}

func TestFinalizeFromPendingRejected(t *testing.T) {
	ap := &models.Appointment{Status: "pendiente"}
	assert.Error(t, Finalize(ap, time.Now()))
	assert.Nil(t, ap.FinalizedAt)
}

func TestCancel(t *testing.T) {
	ap := &models.Appointment{Status: "pendiente"}

	var fieldErr *FieldError
	err := Cancel(ap, "")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "cancel_reason", fieldErr.Field)
	assert.Equal(t, "pendiente", ap.Status)

	require.NoError(t, Cancel(ap, "el cliente no puede asistir"))
	assert.Equal(t, "cancelada", ap.Status)
	assert.Equal(t, "el cliente no puede asistir", ap.CancelReason)

	// terminal
	assert.Error(t, Cancel(ap, "otra vez"))
}

func TestCancelByNoveltyAndReactivate(t *testing.T) {
	ap := &models.Appointment{Status: "pendiente"}

	require.NoError(t, CancelByNovelty(ap, 9, "Tardanza: llega a las 15:00"))
	assert.Equal(t, "cancelada_por_novedad", ap.Status)
	require.NotNil(t, ap.NoveltyID)
	assert.Equal(t, uint(9), *ap.NoveltyID)

	require.NoError(t, Reactivate(ap))
	assert.Equal(t, "pendiente", ap.Status)
	assert.Empty(t, ap.CancelReason)
	assert.Nil(t, ap.NoveltyID)
}

func TestReactivateOnlyFromNoveltyCancellation(t *testing.T) {
	for _, status := range []string{"pendiente", "en_proceso", "finalizada", "cancelada"} {
		ap := &models.Appointment{Status: status}
		assert.Error(t, Reactivate(ap), "status %s", status)
	}
}

func TestComputeTotals(t *testing.T) {
	services := []models.Service{
		{Price: 45000, DurationMin: 60},
		{Price: 25000, DurationMin: 30},
	}

	price, duration := ComputeTotals(services)
	assert.Equal(t, float64(70000), price)
	assert.Equal(t, 90, duration)

	price, duration = ComputeTotals(nil)
	assert.Zero(t, price)
	assert.Zero(t, duration)
}

func TestAppointmentInterval(t *testing.T) {
	ap := &models.Appointment{StartTime: "14:00", TotalDuration: 90}

	iv, err := AppointmentInterval(ap)
	require.NoError(t, err)
	assert.Equal(t, "14:00-15:30", iv.String())

	ap.StartTime = "mediodía"
	_, err = AppointmentInterval(ap)
	assert.Error(t, err)
}
