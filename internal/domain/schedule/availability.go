package schedule

import "github.com/winespa/spa-scheduler/internal/models"

// Slot is one grid interval with its disposition for a (staff, date) query.
// Slots are computed fresh on every call and never persisted.
type Slot struct {
	Interval  Interval
	Available bool
	Reason    string
}

// Resolve walks the day's grid and marks each slot against the staff
// member's non-annulled novelty for that date, if any. The result depends
// only on the inputs: calling it twice for the same unmodified pair yields
// identical slots.
func Resolve(w Window, novelty *models.Novelty) []Slot {
	grid := w.Slots()
	slots := make([]Slot, 0, len(grid))

	for _, iv := range grid {
		slot := Slot{Interval: iv, Available: true}
		if novelty != nil && !IsAnnulled(novelty) && NoveltyBlocks(novelty, iv) {
			slot.Available = false
			slot.Reason = NoveltyBlockReason(novelty)
		}
		slots = append(slots, slot)
	}

	return slots
}
