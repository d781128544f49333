package booking

import (
	"testing"

	"trailhead/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalAmount(t *testing.T) {
	t.Run("hourly prices by duration and headcount", func(t *testing.T) {
		svc := &models.Service{PricingModel: models.PricingHourly, Price: 40}
		assert.InDelta(t, 120.0, CalculateTotalAmount(svc, 90, 2), 0.001)
	})

	t.Run("hourly applies the discount", func(t *testing.T) {
		svc := &models.Service{PricingModel: models.PricingHourly, Price: 40, DiscountPercentage: 25}
		assert.InDelta(t, 30.0, CalculateTotalAmount(svc, 60, 1), 0.001)
	})

	t.Run("fixed ignores duration", func(t *testing.T) {
		svc := &models.Service{PricingModel: models.PricingFixed, Price: 15}
		assert.InDelta(t, 45.0, CalculateTotalAmount(svc, 240, 3), 0.001)
		assert.InDelta(t, 45.0, CalculateTotalAmount(svc, 30, 3), 0.001)
	})

	t.Run("free services total zero", func(t *testing.T) {
		svc := &models.Service{PricingModel: models.PricingFixed, Price: 0}
		assert.Equal(t, 0.0, CalculateTotalAmount(svc, 60, 4))
	})
}
