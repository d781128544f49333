package serviceRepo

import (
	"context"

	"trailhead/models"
)

// ServiceRepository defines persistence for marketplace services.
// A nil service with a nil error means "not found".
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListActive(ctx context.Context, category string) ([]models.Service, error)
}
