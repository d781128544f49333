package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trailhead/models"
	"trailhead/utils"

	"go.uber.org/zap"
)

// slotCacheTTL bounds how stale the advisory slot state may be. Writes
// invalidate eagerly; the TTL only covers crashed invalidations.
const slotCacheTTL = 30 * time.Second

func slotCacheKey(serviceID, date string, quantity int) string {
	return fmt.Sprintf("slots:%s:%s:%d", serviceID, date, quantity)
}

// GetAvailability resolves the offerable slots for a service on a date and
// annotates them with remaining capacity (discrete mode) or legal start/end
// boundaries (range mode). The result is advisory only.
func (e *DefaultBookingEngine) GetAvailability(ctx context.Context, serviceID, date string, quantity int) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()
	if quantity <= 0 {
		quantity = 1
	}

	if e.Cache != nil {
		if cached, err := e.Cache.Get(ctx, slotCacheKey(serviceID, date, quantity)).Result(); err == nil {
			var result models.AvailabilityResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	svc, err := e.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	slots, err := ResolveSlots(svc, date)
	if err != nil {
		return nil, err
	}

	result := &models.AvailabilityResult{
		ServiceID: serviceID,
		Date:      date,
		Mode:      svc.AvailabilityType,
	}
	if len(slots) == 0 {
		// A day without sessions is a valid state, not an error.
		result.Message = "no sessions on this day"
		return result, nil
	}

	bookings, err := e.Bookings.ListActiveByServiceDate(ctx, serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	if svc.AvailabilityType == models.AvailabilityWeekly {
		for _, start := range slots {
			remaining := svc.MaxCapacity - SumQuantityAtStart(bookings, start)
			if remaining < 0 {
				remaining = 0
			}
			result.Slots = append(result.Slots, models.SlotAvailability{
				Start:     start,
				StartTime: utils.FormatClock(start),
				Remaining: remaining,
			})
		}
	} else {
		legalStarts := LegalStartTimes(slots, bookings, svc.MaxCapacity, quantity)
		legalEnds := make(map[int][]int, len(legalStarts))
		for _, start := range legalStarts {
			legalEnds[start] = LegalEndTimes(slots, bookings, start, svc.MaxCapacity, quantity)
		}
		result.Range = &models.RangeAvailability{
			Boundaries:  slots,
			LegalStarts: legalStarts,
			LegalEnds:   legalEnds,
		}
	}

	if e.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := e.Cache.Set(ctx, slotCacheKey(serviceID, date, quantity), data, slotCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slot state", zap.Error(err))
			}
		}
	}

	return result, nil
}

// invalidateSlotCache drops every cached quantity variant for the
// service+date after a write.
func (e *DefaultBookingEngine) invalidateSlotCache(ctx context.Context, serviceID, date string) {
	if e.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*", serviceID, date)
	keys, err := e.Cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	_ = e.Cache.Del(ctx, keys...).Err()
}
