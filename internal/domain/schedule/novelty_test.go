package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winespa/spa-scheduler/internal/models"
)

func intPtr(n int) *int { return &n }

func TestValidateNovelty(t *testing.T) {
	w := testWindow(t)

	tests := []struct {
		name      string
		novelty   models.Novelty
		wantField string
	}{
		{
			name:    "lateness ok",
			novelty: models.Novelty{State: "tardanza", ArrivalTime: "11:00"},
		},
		{
			name:      "lateness without arrival",
			novelty:   models.Novelty{State: "tardanza"},
			wantField: "arrival_time",
		},
		{
			name:      "lateness with absence fields",
			novelty:   models.Novelty{State: "tardanza", ArrivalTime: "11:00", AbsenceKind: "completa"},
			wantField: "absence_kind",
		},
		{
			name:      "lateness arrival out of permitted range",
			novelty:   models.Novelty{State: "tardanza", ArrivalTime: "07:00"},
			wantField: "arrival_time",
		},
		{
			name:    "full day absence ok",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "completa"},
		},
		{
			name:      "full day absence with hours",
			novelty:   models.Novelty{State: "ausente", AbsenceKind: "completa", AbsenceStart: "10:00", AbsenceEnd: "12:00"},
			wantField: "absence_start",
		},
		{
			name:    "by hours absence ok",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "10:00", AbsenceEnd: "12:00"},
		},
		{
			name:      "by hours absence missing end",
			novelty:   models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "10:00"},
			wantField: "absence_start",
		},
		{
			name:      "by hours absence inverted",
			novelty:   models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "12:00", AbsenceEnd: "10:00"},
			wantField: "absence_start",
		},
		{
			name:      "absence without kind",
			novelty:   models.Novelty{State: "ausente"},
			wantField: "absence_kind",
		},
		{
			name:    "vacation ok one week",
			novelty: models.Novelty{State: "vacaciones", VacationDays: intPtr(7)},
		},
		{
			name:    "vacation ok two weeks",
			novelty: models.Novelty{State: "vacaciones", VacationDays: intPtr(14)},
		},
		{
			name:      "vacation too short",
			novelty:   models.Novelty{State: "vacaciones", VacationDays: intPtr(3)},
			wantField: "vacation_days",
		},
		{
			name:      "vacation not whole weeks",
			novelty:   models.Novelty{State: "vacaciones", VacationDays: intPtr(10)},
			wantField: "vacation_days",
		},
		{
			name:      "vacation without days",
			novelty:   models.Novelty{State: "vacaciones"},
			wantField: "vacation_days",
		},
		{
			name:    "leave with document ok",
			novelty: models.Novelty{State: "incapacidad", SupportDocKey: "incapacidades/x.pdf"},
		},
		{
			name:      "leave without document",
			novelty:   models.Novelty{State: "incapacidad"},
			wantField: "support_doc",
		},
		{
			name:    "shift opening ok",
			novelty: models.Novelty{State: "horario", Shift: "apertura"},
		},
		{
			name:    "shift closing ok",
			novelty: models.Novelty{State: "horario", Shift: "cierre"},
		},
		{
			name:      "shift missing",
			novelty:   models.Novelty{State: "horario"},
			wantField: "shift",
		},
		{
			name:    "normal ok",
			novelty: models.Novelty{State: "normal"},
		},
		{
			name:      "normal with lateness fields",
			novelty:   models.Novelty{State: "normal", ArrivalTime: "11:00"},
			wantField: "state",
		},
		{
			name:      "unknown state",
			novelty:   models.Novelty{State: "festivo"},
			wantField: "state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNovelty(&tt.novelty, w)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestNoveltyBlocks(t *testing.T) {
	slot := Interval{Start: 840, End: 870} // 14:00-14:30

	tests := []struct {
		name    string
		novelty models.Novelty
		want    bool
	}{
		{
			name:    "full day absence blocks everything",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "completa"},
			want:    true,
		},
		{
			name:    "by hours absence overlapping",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "13:00", AbsenceEnd: "15:00"},
			want:    true,
		},
		{
			name:    "by hours absence touching boundary",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "14:30", AbsenceEnd: "16:00"},
			want:    false,
		},
		{
			name:    "by hours absence disjoint",
			novelty: models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "10:00", AbsenceEnd: "12:00"},
			want:    false,
		},
		{
			name:    "lateness blocks slots before arrival",
			novelty: models.Novelty{State: "tardanza", ArrivalTime: "15:00"},
			want:    true,
		},
		{
			name:    "lateness frees slot starting at arrival",
			novelty: models.Novelty{State: "tardanza", ArrivalTime: "14:00"},
			want:    false,
		},
		{
			name:    "vacation never blocks slots",
			novelty: models.Novelty{State: "vacaciones", VacationDays: intPtr(7)},
			want:    false,
		},
		{
			name:    "shift never blocks slots",
			novelty: models.Novelty{State: "horario", Shift: "apertura"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NoveltyBlocks(&tt.novelty, slot))
		})
	}
}

func TestNoveltyBlockReason(t *testing.T) {
	full := models.Novelty{State: "ausente", AbsenceKind: "completa", Observations: "cita médica"}
	assert.Equal(t, "Ausencia completa: cita médica", NoveltyBlockReason(&full))

	hours := models.Novelty{State: "ausente", AbsenceKind: "por_horas", AbsenceStart: "10:00", AbsenceEnd: "12:00"}
	assert.Equal(t, "Ausencia por horas: Sin motivo", NoveltyBlockReason(&hours))

	late := models.Novelty{State: "tardanza", ArrivalTime: "15:00"}
	assert.Equal(t, "Tardanza: llega a las 15:00", NoveltyBlockReason(&late))
}

func TestCausesCascade(t *testing.T) {
	assert.True(t, CausesCascade(&models.Novelty{State: "ausente"}))
	assert.True(t, CausesCascade(&models.Novelty{State: "tardanza"}))
	assert.False(t, CausesCascade(&models.Novelty{State: "vacaciones"}))
	assert.False(t, CausesCascade(&models.Novelty{State: "incapacidad"}))
	assert.False(t, CausesCascade(&models.Novelty{State: "horario"}))
	assert.False(t, CausesCascade(&models.Novelty{State: "normal"}))
}

func TestNoveltyStateLabel(t *testing.T) {
	assert.Equal(t, "Tardanza", NoveltyLateness.Label())
	assert.Equal(t, "Ausente", NoveltyAbsence.Label())
	assert.Equal(t, "Anulada", NoveltyAnnulled.Label())
}
