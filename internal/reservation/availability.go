package reservation

import (
	"sort"
	"time"
)

// maxSlotsPerDay caps the reservations fetched for a single-day projection.
const maxSlotsPerDay = 500

// Slot is a free window within a resource's day.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}

// DayAvailability is one resource's free windows for a single calendar day.
// Day carries the resolved date so callers do not re-derive "today" themselves.
type DayAvailability struct {
	Day   time.Time
	Slots []Slot
}

// FreeSlots computes the gaps between reservations inside [open, close).
// Reservations outside the window are clamped or skipped; the input order
// does not matter. An empty result means the whole window is taken.
func FreeSlots(open, close time.Time, reservations []*Reservation) []Slot {
	intervals := make([]Interval, 0, len(reservations))
	for _, rsv := range reservations {
		iv := Interval{Start: rsv.StartTime, End: rsv.EndTime}
		if !iv.Overlaps(Interval{Start: open, End: close}) {
			continue
		}
		if iv.Start.Before(open) {
			iv.Start = open
		}
		if iv.End.After(close) {
			iv.End = close
		}
		intervals = append(intervals, iv)
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})

	slots := []Slot{}
	cursor := open
	for _, iv := range intervals {
		if iv.Start.After(cursor) {
			slots = append(slots, Slot{StartTime: cursor, EndTime: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if cursor.Before(close) {
		slots = append(slots, Slot{StartTime: cursor, EndTime: close})
	}

	return slots
}
