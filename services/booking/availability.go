package booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"trailhead/models"
	"trailhead/utils"
)

// ResolveSlots converts a service's availability configuration plus a
// calendar date into the ordered list of offerable slot start minutes.
// An empty result is a valid state (day without sessions), not an error.
func ResolveSlots(svc *models.Service, date string) ([]int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	switch svc.AvailabilityType {
	case models.AvailabilityWeekly:
		return resolveWeeklySlots(svc, day)
	default:
		return resolveRangeSlots(svc)
	}
}

// resolveRangeSlots enumerates every boundary between available_from and
// available_to, stepping by the slot granularity, inclusive of both ends.
func resolveRangeSlots(svc *models.Service) ([]int, error) {
	from, err := utils.ParseClock(svc.AvailableFrom)
	if err != nil {
		return nil, fmt.Errorf("service %s: bad available_from: %w", svc.ID, err)
	}
	to, err := utils.ParseClock(svc.AvailableTo)
	if err != nil {
		return nil, fmt.Errorf("service %s: bad available_to: %w", svc.ID, err)
	}
	if to < from {
		return nil, fmt.Errorf("service %s: available_to precedes available_from", svc.ID)
	}

	step := svc.StepMinutes()
	var slots []int
	for t := from; t <= to; t += step {
		slots = append(slots, t)
	}
	return slots, nil
}

// resolveWeeklySlots looks up the session starts configured for the date's
// weekday. Dates outside the service's date window yield no slots unless the
// service is available forever.
func resolveWeeklySlots(svc *models.Service, day time.Time) ([]int, error) {
	if !svc.AvailableForever {
		dateStr := day.Format("2006-01-02")
		if svc.DateFrom != "" && dateStr < svc.DateFrom {
			return nil, nil
		}
		if svc.DateTo != "" && dateStr > svc.DateTo {
			return nil, nil
		}
	}

	weekday := strings.ToLower(day.Weekday().String())
	starts, ok := svc.WeeklySchedule[weekday]
	if !ok || len(starts) == 0 {
		return nil, nil
	}

	slots := make([]int, 0, len(starts))
	for _, s := range starts {
		minute, err := utils.ParseClock(s)
		if err != nil {
			return nil, fmt.Errorf("service %s: bad schedule entry for %s: %w", svc.ID, weekday, err)
		}
		slots = append(slots, minute)
	}
	sort.Ints(slots)
	return slots, nil
}
