package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "trailhead/database/repository/notification"
	providerRepo "trailhead/database/repository/provider"
	"trailhead/models"
	"trailhead/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService records in-app notifications and sends best-effort FCM
// pushes. Failures here must never affect the operation being notified
// about.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, b *models.Booking, svc *models.Service) error
	NotifyBookingCancelled(ctx context.Context, b *models.Booking, svc *models.Service) error

	ListForRecipient(ctx context.Context, recipientID, role string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Providers providerRepo.ProviderRepository
}

func (s *DefaultNotificationService) NotifyBookingCreated(ctx context.Context, b *models.Booking, svc *models.Service) error {
	title := "New booking received"
	body := fmt.Sprintf("%s on %s (%s–%s), %d guest(s), ref %s",
		svc.Name, b.Date, utils.FormatClock(b.Start), utils.FormatClock(b.End), b.Quantity, b.Reference)
	return s.notifyProvider(ctx, b, "booking_created", title, body)
}

func (s *DefaultNotificationService) NotifyBookingCancelled(ctx context.Context, b *models.Booking, svc *models.Service) error {
	title := "Booking cancelled"
	body := fmt.Sprintf("%s on %s, ref %s was cancelled", svc.Name, b.Date, b.Reference)
	return s.notifyProvider(ctx, b, "booking_cancelled", title, body)
}

func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID, role string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, recipientID, role)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

func (s *DefaultNotificationService) notifyProvider(ctx context.Context, b *models.Booking, typ, title, body string) error {
	row := &models.Notification{
		ID:            uuid.New().String(),
		RecipientID:   b.ProviderID,
		RecipientRole: models.RecipientProvider,
		Type:          typ,
		Title:         title,
		Body:          body,
		Data: map[string]string{
			"booking_id": b.ID,
			"service_id": b.ServiceID,
			"date":       b.Date,
		},
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	// Push is purely opportunistic.
	s.push(ctx, b.ProviderID, title, body, row.Data)
	return nil
}

func (s *DefaultNotificationService) push(ctx context.Context, providerID, title, body string, data map[string]string) {
	logger := utils.GetLogger()
	if utils.FCMClient == nil {
		return
	}
	prov, err := s.Providers.GetByID(ctx, providerID)
	if err != nil || prov == nil || prov.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: prov.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("failed to send FCM push",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
