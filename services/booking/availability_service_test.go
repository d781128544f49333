package booking

import (
	"context"
	"testing"

	"trailhead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityUnknownService(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	_, err := engine.GetAvailability(context.Background(), "nope", "2026-09-07", 1)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	engine, _, services, _ := newTestEngine()
	seedWeeklyService(services)

	// Tuesday has no configured sessions.
	result, err := engine.GetAvailability(context.Background(), "svc-weekly", "2026-09-08", 1)
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Nil(t, result.Range)
	assert.NotEmpty(t, result.Message)
}

func TestGetAvailabilityWeeklyRemaining(t *testing.T) {
	engine, repo, services, _ := newTestEngine()
	svc := seedWeeklyService(services)
	svc.MaxCapacity = 5

	repo.bookings = append(repo.bookings,
		models.Booking{ID: "b1", ServiceID: "svc-weekly", Date: "2026-09-07",
			Start: 600, End: 660, Quantity: 3, Status: models.BookingConfirmed},
		models.Booking{ID: "b2", ServiceID: "svc-weekly", Date: "2026-09-07",
			Start: 600, End: 660, Quantity: 2, Status: models.BookingPendingPayment},
		models.Booking{ID: "b3", ServiceID: "svc-weekly", Date: "2026-09-07",
			Start: 840, End: 900, Quantity: 1, Status: models.BookingCancelled},
	)

	result, err := engine.GetAvailability(context.Background(), "svc-weekly", "2026-09-07", 1)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	byStart := map[int]models.SlotAvailability{}
	for _, s := range result.Slots {
		byStart[s.Start] = s
	}
	assert.Equal(t, 5, byStart[480].Remaining)
	assert.Equal(t, 0, byStart[600].Remaining) // pending_payment holds capacity
	assert.Equal(t, 5, byStart[840].Remaining) // cancelled does not
	assert.Equal(t, "10:00", byStart[600].StartTime)
}

func TestGetAvailabilityRangeBoundaries(t *testing.T) {
	engine, repo, services, _ := newTestEngine()
	seedRangeService(services) // 09:00 to 17:00, capacity 2

	repo.bookings = append(repo.bookings, models.Booking{
		ID: "b1", ServiceID: "svc-range", Date: "2026-09-07",
		Start: 540, End: 1020, Quantity: 1, Status: models.BookingConfirmed,
	})

	t.Run("single seat still fits anywhere", func(t *testing.T) {
		result, err := engine.GetAvailability(context.Background(), "svc-range", "2026-09-07", 1)
		require.NoError(t, err)
		require.NotNil(t, result.Range)
		assert.Len(t, result.Range.Boundaries, 17)
		assert.Len(t, result.Range.LegalStarts, 16) // every boundary except the last
		assert.Equal(t, []int{570, 600}, result.Range.LegalEnds[540][:2])
	})

	t.Run("two seats cannot fit beside the day-long booking", func(t *testing.T) {
		result, err := engine.GetAvailability(context.Background(), "svc-range", "2026-09-07", 2)
		require.NoError(t, err)
		require.NotNil(t, result.Range)
		assert.Empty(t, result.Range.LegalStarts)
	})
}
