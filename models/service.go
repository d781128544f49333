package models

import "time"

// Availability types for a service.
const (
	AvailabilityRange  = "range"  // single daily time window, arbitrary start/end
	AvailabilityWeekly = "weekly" // per-weekday list of fixed session starts
)

// Pricing models for a service.
const (
	PricingHourly = "hourly"
	PricingFixed  = "fixed"
)

// WeeklySchedule maps a lowercase weekday name ("sunday".."saturday") to the
// list of session start times ("HH:MM") offered on that day. A day with no
// entry simply has no sessions.
type WeeklySchedule map[string][]string

// Service represents a bookable offering published by a provider.
type Service struct {
	ID                 string         `bson:"id" json:"id"`
	ProviderID         string         `bson:"provider_id" json:"provider_id"`
	Name               string         `bson:"name" json:"name"`
	Description        string         `bson:"description,omitempty" json:"description,omitempty"`
	Category           string         `bson:"category" json:"category"` // e.g. "adventure", "training", "offer"
	PricingModel       string         `bson:"pricing_model" json:"pricing_model"`
	Price              float64        `bson:"price" json:"price"`
	DiscountPercentage float64        `bson:"discount_percentage,omitempty" json:"discount_percentage,omitempty"`
	MaxCapacity        int            `bson:"max_capacity" json:"max_capacity"` // people allowed per overlapping interval
	SessionDuration    int            `bson:"session_duration,omitempty" json:"session_duration,omitempty"` // minutes, weekly-schedule services
	AvailabilityType   string         `bson:"availability_type" json:"availability_type"`
	AvailableFrom      string         `bson:"available_from,omitempty" json:"available_from,omitempty"` // "HH:MM"
	AvailableTo        string         `bson:"available_to,omitempty" json:"available_to,omitempty"`     // "HH:MM"
	SlotStepMinutes    int            `bson:"slot_step_minutes,omitempty" json:"slot_step_minutes,omitempty"`
	DateFrom           string         `bson:"date_from,omitempty" json:"date_from,omitempty"` // "2006-01-02"
	DateTo             string         `bson:"date_to,omitempty" json:"date_to,omitempty"`
	AvailableForever   bool           `bson:"available_forever" json:"available_forever"`
	WeeklySchedule     WeeklySchedule `bson:"weekly_schedule,omitempty" json:"weekly_schedule,omitempty"`
	PhotoURL           string         `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Active             bool           `bson:"active" json:"active"`
	CreatedAt          time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `bson:"updated_at" json:"updated_at"`
}

// DefaultSlotStep is the slot granularity used when a range service does not
// configure one.
const DefaultSlotStep = 30

// StepMinutes returns the configured slot granularity, falling back to the
// default.
func (s *Service) StepMinutes() int {
	if s.SlotStepMinutes > 0 {
		return s.SlotStepMinutes
	}
	return DefaultSlotStep
}

// EffectiveRate returns the per-unit price with any discount applied.
func (s *Service) EffectiveRate() float64 {
	if s.DiscountPercentage > 0 {
		return s.Price * (1 - s.DiscountPercentage/100)
	}
	return s.Price
}
