package userRepo

import (
	"context"

	"trailhead/models"
)

// UserRepository defines persistence for platform users.
// A nil user with a nil error means "not found".
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}
