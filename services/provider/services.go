package provider

import (
	"context"
	"fmt"
	"time"

	"trailhead/models"
	"trailhead/utils"

	"github.com/google/uuid"
)

var weekdayNames = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// CreateService validates and publishes a new service for the provider.
func (s *DefaultProviderService) CreateService(ctx context.Context, providerID string, svc *models.Service) (*models.Service, error) {
	if err := validateServiceConfig(svc); err != nil {
		return nil, err
	}

	now := time.Now()
	svc.ID = uuid.New().String()
	svc.ProviderID = providerID
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// UpdateService replaces the configuration of a provider-owned service.
func (s *DefaultProviderService) UpdateService(ctx context.Context, providerID string, svc *models.Service) (*models.Service, error) {
	existing, err := s.Services.GetByID(ctx, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if existing == nil {
		return nil, ErrServiceNotFound
	}
	if existing.ProviderID != providerID {
		return nil, ErrNotOwner
	}
	if err := validateServiceConfig(svc); err != nil {
		return nil, err
	}

	svc.ProviderID = providerID
	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now()
	if err := s.Services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	// Schedule or capacity changes make cached slot state stale.
	s.invalidateSlotCache(ctx, svc.ID)
	return svc, nil
}

func (s *DefaultProviderService) invalidateSlotCache(ctx context.Context, serviceID string) {
	if s.Cache == nil {
		return
	}
	keys, err := s.Cache.Keys(ctx, fmt.Sprintf("slots:%s:*", serviceID)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	_ = s.Cache.Del(ctx, keys...).Err()
}

func (s *DefaultProviderService) ListServices(ctx context.Context, providerID string) ([]models.Service, error) {
	return s.Services.ListByProvider(ctx, providerID)
}

// validateServiceConfig rejects configurations the booking engine cannot
// resolve: unknown weekday keys, malformed clock strings, missing capacity.
func validateServiceConfig(svc *models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.MaxCapacity <= 0 {
		return fmt.Errorf("max_capacity must be positive")
	}
	if svc.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if svc.DiscountPercentage < 0 || svc.DiscountPercentage > 100 {
		return fmt.Errorf("discount_percentage must be between 0 and 100")
	}

	switch svc.AvailabilityType {
	case models.AvailabilityWeekly:
		if svc.SessionDuration <= 0 {
			return fmt.Errorf("session_duration is required for weekly services")
		}
		for day, starts := range svc.WeeklySchedule {
			if !weekdayNames[day] {
				return fmt.Errorf("unknown weekday %q in weekly_schedule", day)
			}
			for _, t := range starts {
				if _, err := utils.ParseClock(t); err != nil {
					return fmt.Errorf("bad schedule entry for %s: %w", day, err)
				}
			}
		}
	case models.AvailabilityRange:
		from, err := utils.ParseClock(svc.AvailableFrom)
		if err != nil {
			return fmt.Errorf("bad available_from: %w", err)
		}
		to, err := utils.ParseClock(svc.AvailableTo)
		if err != nil {
			return fmt.Errorf("bad available_to: %w", err)
		}
		if to <= from {
			return fmt.Errorf("available_to must be after available_from")
		}
	default:
		return fmt.Errorf("unknown availability_type %q", svc.AvailabilityType)
	}
	return nil
}
