package model

import "time"

// TimeSlot is a bookable time interval with a price. Slots may overlap;
// the listing performs no conflict resolution between them.
type TimeSlot struct {
	ID        string    `json:"id" validate:"required"`
	Start     time.Time `json:"start" validate:"required"`
	End       time.Time `json:"end" validate:"required,gtfield=Start"`
	Available bool      `json:"available"`
	Price     float64   `json:"price" validate:"gte=0"`
}
