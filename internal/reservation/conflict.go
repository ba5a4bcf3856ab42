package reservation

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (one ends exactly when the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Booked is an existing reservation's interval together with its id,
// so updates can exclude the reservation's own prior state.
type Booked struct {
	ID string
	Interval
}

// HasConflict reports whether the candidate interval overlaps any of the
// existing intervals, ignoring the one with excludeID (pass "" on create).
// The caller guarantees candidate.End is after candidate.Start.
func HasConflict(candidate Interval, existing []Booked, excludeID string) bool {
	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}
