// Package selection implements the slot selection model used by the public
// booking calendar: an ordered multi-select over time slots with a
// toggle-based protocol and synchronously derived totals.
package selection

import (
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// Selection is an immutable-style collection of chosen slots. Mutating
// operations return a new Selection and never touch the receiver's backing
// array, so callers can rely on reference comparison to detect change.
type Selection struct {
	slots []model.TimeSlot
}

func New() Selection {
	return Selection{}
}

// Toggle removes the slot when one with an equal ID is already selected
// and appends it otherwise. No maximum count and no conflict check is
// applied to the candidate.
func (s Selection) Toggle(slot model.TimeSlot) Selection {
	if s.IsSelected(slot) {
		next := make([]model.TimeSlot, 0, len(s.slots)-1)
		for _, existing := range s.slots {
			if existing.ID != slot.ID {
				next = append(next, existing)
			}
		}
		return Selection{slots: next}
	}

	next := make([]model.TimeSlot, len(s.slots), len(s.slots)+1)
	copy(next, s.slots)
	return Selection{slots: append(next, slot)}
}

// IsSelected tests membership by ID equality.
func (s Selection) IsSelected(slot model.TimeSlot) bool {
	return s.Contains(slot.ID)
}

func (s Selection) Contains(id string) bool {
	for _, existing := range s.slots {
		if existing.ID == id {
			return true
		}
	}
	return false
}

// Total sums the prices of the selected slots. An empty selection totals 0.
func (s Selection) Total() float64 {
	var total float64
	for _, slot := range s.slots {
		total += slot.Price
	}
	return total
}

func (s Selection) Len() int {
	return len(s.slots)
}

// Slots returns a copy of the selected slots in selection order.
func (s Selection) Slots() []model.TimeSlot {
	out := make([]model.TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Clear returns the empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}
