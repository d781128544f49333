package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "trailhead/database/repository/provider"
	serviceRepo "trailhead/database/repository/service"
	"trailhead/models"
	"trailhead/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotOwner is returned when a provider edits a service it does not own.
	ErrNotOwner = errors.New("service does not belong to provider")
	// ErrServiceNotFound mirrors the booking engine's not-found semantics.
	ErrServiceNotFound = errors.New("service not found")
)

const tokenDuration = 72 * time.Hour

// ProviderService handles provider accounts and their service catalogue.
type ProviderService interface {
	Register(ctx context.Context, p *models.Provider, password string) (*models.ProviderAuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)

	CreateService(ctx context.Context, providerID string, svc *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, providerID string, svc *models.Service) (*models.Service, error)
	ListServices(ctx context.Context, providerID string) ([]models.Service, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	Services serviceRepo.ServiceRepository
	Cache    *redis.Client // nil disables slot-cache invalidation
}

func (s *DefaultProviderService) Register(ctx context.Context, p *models.Provider, password string) (*models.ProviderAuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing provider: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	p.ID = uuid.New().String()
	p.PasswordHash = string(hash)
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	token, err := utils.GenerateToken(p.ID, "provider", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.ProviderAuthResponse{Token: token, Provider: p}, nil
}

func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if p == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, "provider", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.ProviderAuthResponse{Token: token, Provider: p}, nil
}

func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}
