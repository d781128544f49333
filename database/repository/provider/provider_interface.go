package providerRepo

import (
	"context"

	"trailhead/models"
)

// ProviderRepository defines persistence for service providers.
// A nil provider with a nil error means "not found".
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}
