package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/models"
)

func TestResolveNoNovelty(t *testing.T) {
	w := testWindow(t)

	slots := Resolve(w, nil)
	require.Len(t, slots, 20)

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Empty(t, s.Reason)
	}
}

func TestResolveFullDayAbsence(t *testing.T) {
	w := testWindow(t)
	n := &models.Novelty{State: "ausente", AbsenceKind: "completa", Observations: "calamidad"}

	slots := Resolve(w, n)
	require.Len(t, slots, 20)

	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, "Ausencia completa: calamidad", s.Reason)
	}
}

func TestResolveByHoursAbsence(t *testing.T) {
	w := testWindow(t)
	n := &models.Novelty{
		State:        "ausente",
		AbsenceKind:  "por_horas",
		AbsenceStart: "12:00",
		AbsenceEnd:   "14:00",
	}

	slots := Resolve(w, n)
	require.Len(t, slots, 20)

	for _, s := range slots {
		blocked := s.Interval.Start >= 720 && s.Interval.Start < 840
		assert.Equal(t, !blocked, s.Available, "slot %s", s.Interval)
	}
}

func TestResolveLateness(t *testing.T) {
	w := testWindow(t)
	n := &models.Novelty{State: "tardanza", ArrivalTime: "15:00"}

	slots := Resolve(w, n)
	require.Len(t, slots, 20)

	for _, s := range slots {
		if s.Interval.Start < 900 {
			assert.False(t, s.Available, "slot %s starts before arrival", s.Interval)
		} else {
			assert.True(t, s.Available, "slot %s starts at or after arrival", s.Interval)
		}
	}
}

func TestResolveAnnulledNoveltyIsIgnored(t *testing.T) {
	w := testWindow(t)
	n := &models.Novelty{State: "anulada"}

	for _, s := range Resolve(w, n) {
		assert.True(t, s.Available)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	w := testWindow(t)
	n := &models.Novelty{State: "tardanza", ArrivalTime: "12:00"}

	first := Resolve(w, n)
	second := Resolve(w, n)

	assert.Equal(t, first, second)
}
