package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) Window {
	t.Helper()
	w := Window{
		Open:        600,  // 10:00
		Close:       1200, // 20:00
		SlotMinutes: 30,
		Earliest:    480,  // 08:00
		Latest:      1320, // 22:00
	}
	require.NoError(t, w.Validate())
	return w
}

func TestWindowSlots(t *testing.T) {
	w := testWindow(t)

	slots := w.Slots()
	require.Len(t, slots, 20)

	assert.Equal(t, "10:00-10:30", slots[0].String())
	assert.Equal(t, "19:30-20:00", slots[len(slots)-1].String())

	// consecutive and non overlapping
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestWindowSlotsUnevenClose(t *testing.T) {
	w := Window{Open: 600, Close: 650, SlotMinutes: 30, Earliest: 0, Latest: 1439}

	// a partial trailing slot is never emitted
	slots := w.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00-10:30", slots[0].String())
}

func TestWindowContains(t *testing.T) {
	w := testWindow(t)

	assert.True(t, w.Contains(600))
	assert.True(t, w.Contains(1199))
	assert.False(t, w.Contains(1200))
	assert.False(t, w.Contains(599))
}

func TestWindowSlotAt(t *testing.T) {
	w := testWindow(t)

	slot, ok := w.SlotAt(615) // 10:15
	require.True(t, ok)
	assert.Equal(t, "10:00-10:30", slot.String())

	slot, ok = w.SlotAt(630)
	require.True(t, ok)
	assert.Equal(t, "10:30-11:00", slot.String())

	_, ok = w.SlotAt(1200)
	assert.False(t, ok)
}

func TestWindowInPermittedRange(t *testing.T) {
	w := testWindow(t)

	assert.True(t, w.InPermittedRange(480))
	assert.True(t, w.InPermittedRange(1320))
	assert.False(t, w.InPermittedRange(479))
	assert.False(t, w.InPermittedRange(1321))
}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name string
		w    Window
	}{
		{name: "zero slot", w: Window{Open: 600, Close: 1200, SlotMinutes: 0, Earliest: 480, Latest: 1320}},
		{name: "close before open", w: Window{Open: 1200, Close: 600, SlotMinutes: 30, Earliest: 480, Latest: 1320}},
		{name: "range narrower than window", w: Window{Open: 600, Close: 1200, SlotMinutes: 30, Earliest: 660, Latest: 1320}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.w.Validate())
		})
	}
}
