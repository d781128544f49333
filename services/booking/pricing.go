package booking

import "trailhead/models"

// CalculateTotalAmount prices a booking. Hourly services charge the
// discounted rate per hour per person; fixed-price services charge the list
// price per person regardless of duration.
func CalculateTotalAmount(svc *models.Service, durationMinutes, quantity int) float64 {
	if svc.PricingModel == models.PricingHourly {
		return svc.EffectiveRate() * (float64(durationMinutes) / 60.0) * float64(quantity)
	}
	return svc.Price * float64(quantity)
}
