package booking

import (
	"sort"

	"trailhead/models"
)

// Overlaps reports whether the half-open minute intervals [s1, e1) and
// [s2, e2) intersect. Touching endpoints (e1 == s2 or e2 == s1) do not
// overlap; a booking ending at 11:00 leaves 11:00 free.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// SumOverlappingQuantity totals the quantity (people, not rows) of the given
// bookings whose interval overlaps [start, end).
func SumOverlappingQuantity(bookings []models.Booking, start, end int) int {
	total := 0
	for _, b := range bookings {
		if Overlaps(b.Start, b.End, start, end) {
			total += b.Quantity
		}
	}
	return total
}

// SumQuantityAtStart totals the quantity of bookings whose start minute
// equals slotStart. Discrete sessions all share the schedule's start times,
// so exact-start matching is sufficient; a session spilling past the gap to
// the next configured slot is not detected here.
func SumQuantityAtStart(bookings []models.Booking, slotStart int) int {
	total := 0
	for _, b := range bookings {
		if b.Start == slotStart {
			total += b.Quantity
		}
	}
	return total
}

// LegalStartTimes filters boundaries down to the starts from which at least
// one later boundary can serve as an end without pushing any overlapped
// instant past maxCapacity.
func LegalStartTimes(boundaries []int, bookings []models.Booking, maxCapacity, quantity int) []int {
	var starts []int
	for i, start := range boundaries {
		for _, end := range boundaries[i+1:] {
			if SumOverlappingQuantity(bookings, start, end)+quantity <= maxCapacity {
				starts = append(starts, start)
				break
			}
		}
	}
	return starts
}

// LegalEndTimes returns the boundaries after start that form a legal
// interval [start, end) under the capacity ceiling.
func LegalEndTimes(boundaries []int, bookings []models.Booking, start, maxCapacity, quantity int) []int {
	var ends []int
	for _, end := range boundaries {
		if end <= start {
			continue
		}
		if SumOverlappingQuantity(bookings, start, end)+quantity <= maxCapacity {
			ends = append(ends, end)
		}
	}
	sort.Ints(ends)
	return ends
}
