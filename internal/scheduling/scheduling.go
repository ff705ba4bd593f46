// Package scheduling implements the advisory double-booking check: a linear
// scan of a veterinarian's open slots against a candidate start time. It is
// best-effort only; nothing serializes two concurrent requests that both pass
// the scan.
package scheduling

import (
	"time"
)

// SlotDuration is the fixed length of every appointment.
const SlotDuration = 30 * time.Minute

// Overlaps reports whether two fixed-length slots starting at a and b
// intersect, treating each as the half-open interval [t, t+SlotDuration).
func Overlaps(a, b time.Time) bool {
	if a.After(b) {
		a, b = b, a
	}
	return b.Before(a.Add(SlotDuration))
}

// FindConflict scans the existing slot starts and returns the first one whose
// interval intersects the candidate's.
func FindConflict(candidate time.Time, existing []time.Time) (time.Time, bool) {
	for _, start := range existing {
		if Overlaps(candidate, start) {
			return start, true
		}
	}
	return time.Time{}, false
}
