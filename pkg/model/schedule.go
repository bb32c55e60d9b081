package model

import (
	"fmt"
	"time"
)

// RecurringSlot is a weekly-repeating availability window. Its identity is
// derived from (day of week, start time of day), not allocated randomly, so
// selecting the same region twice always resolves to the same entry.
//
// Day numbering follows time.Weekday: Sunday = 0 through Saturday = 6.
type RecurringSlot struct {
	ID        string       `json:"id" validate:"required"`
	DayOfWeek time.Weekday `json:"day_of_week" validate:"min=0,max=6"`
	Start     time.Time    `json:"start" validate:"required"`
	End       time.Time    `json:"end" validate:"required,gtfield=Start"`
}

// WeeklyScheduleEntry is the serialized projection of a recurring slot,
// handed to the persistence publisher on save.
type WeeklyScheduleEntry struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
}

// RecurringSlotID derives a recurring slot's identity from its day of week
// and start time of day, formatted as "<dayOfWeek>-<HHmm>".
func RecurringSlotID(day time.Weekday, start time.Time) string {
	return fmt.Sprintf("%d-%s", int(day), start.Format("1504"))
}

// TimeLabel formats a timestamp's time of day as "HH:mm". Recurring slots
// are compared by label equality, which floors both sides to the minute.
func TimeLabel(t time.Time) string {
	return t.Format("15:04")
}

// SameRegion reports whether a recurring slot covers the same weekly region
// as the given day and start/end labels. Equivalence, not object identity,
// decides whether a toggle selects or deselects.
func (s RecurringSlot) SameRegion(day time.Weekday, startLabel, endLabel string) bool {
	return s.DayOfWeek == day &&
		TimeLabel(s.Start) == startLabel &&
		TimeLabel(s.End) == endLabel
}

// ToScheduleEntry projects the recurring slot into its serializable form.
func (s RecurringSlot) ToScheduleEntry() WeeklyScheduleEntry {
	return WeeklyScheduleEntry{
		DayOfWeek: int(s.DayOfWeek),
		StartTime: TimeLabel(s.Start),
		EndTime:   TimeLabel(s.End),
	}
}
