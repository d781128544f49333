package models

// SlotAvailability reports remaining capacity for one discrete session slot.
type SlotAvailability struct {
	Start     int    `json:"start"` // minutes from midnight
	StartTime string `json:"start_time"` // "HH:MM", for display
	Remaining int    `json:"remaining"`
}

// RangeAvailability reports the legal boundaries for a range-mode booking on
// one date. Starts lists every boundary from which at least one end is
// reachable; Ends lists reachable ends per start (keyed by start minute).
type RangeAvailability struct {
	Boundaries  []int         `json:"boundaries"` // all slot boundaries for the day
	LegalStarts []int         `json:"legal_starts"`
	LegalEnds   map[int][]int `json:"legal_ends"`
}

// AvailabilityResult is the advisory response for one service and date. It
// never guarantees the slot will still be free at insert time.
type AvailabilityResult struct {
	ServiceID string             `json:"service_id"`
	Date      string             `json:"date"`
	Mode      string             `json:"mode"` // AvailabilityRange or AvailabilityWeekly
	Slots     []SlotAvailability `json:"slots,omitempty"`
	Range     *RangeAvailability `json:"range,omitempty"`
	Message   string             `json:"message,omitempty"` // e.g. "no sessions on this day"
}
