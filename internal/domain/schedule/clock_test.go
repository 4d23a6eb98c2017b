package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "10:00", want: 600},
		{in: "10:30", want: 630},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "", wantErr: true},
		{in: "10h30", wantErr: true},
		{in: "9:3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0).String())
	assert.Equal(t, "10:30", Clock(630).String())
	assert.Equal(t, "09:05", Clock(9*60+5).String())
}

func TestClockAddAndBefore(t *testing.T) {
	c, err := ParseClock("10:00")
	require.NoError(t, err)

	assert.Equal(t, "10:30", c.Add(30).String())
	assert.True(t, c.Before(c.Add(1)))
	assert.False(t, c.Add(30).Before(c))
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660} // 10:00-11:00

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "identical", other: Interval{Start: 600, End: 660}, want: true},
		{name: "contained", other: Interval{Start: 615, End: 645}, want: true},
		{name: "partial left", other: Interval{Start: 570, End: 630}, want: true},
		{name: "partial right", other: Interval{Start: 630, End: 690}, want: true},
		{name: "touching at end", other: Interval{Start: 660, End: 720}, want: false},
		{name: "touching at start", other: Interval{Start: 540, End: 600}, want: false},
		{name: "disjoint", other: Interval{Start: 720, End: 780}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: 600, End: 630}

	assert.True(t, iv.Contains(600))
	assert.True(t, iv.Contains(629))
	assert.False(t, iv.Contains(630))
	assert.False(t, iv.Contains(599))
}
