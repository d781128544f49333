package handlers

import (
	"time"

	serviceRepo "trailhead/database/repository/service"
	syslogRepo "trailhead/database/repository/syslog"
	"trailhead/models"
	"trailhead/services/booking"
	"trailhead/services/notification"
	"trailhead/services/provider"
	"trailhead/services/storage"
	"trailhead/services/user"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandlerBundle aggregates the service dependencies for all HTTP handlers.
type HandlerBundle struct {
	Users         user.UserService
	Providers     provider.ProviderService
	Bookings      booking.BookingEngine
	Notifications notification.NotificationService
	Storage       storage.StorageService
	Services      serviceRepo.ServiceRepository
	Syslog        syslogRepo.SystemLogRepository
}

// NewHandlerBundle wires the handler layer.
func NewHandlerBundle(
	users user.UserService,
	providers provider.ProviderService,
	bookings booking.BookingEngine,
	notifications notification.NotificationService,
	store storage.StorageService,
	services serviceRepo.ServiceRepository,
	syslog syslogRepo.SystemLogRepository,
) *HandlerBundle {
	return &HandlerBundle{
		Users:         users,
		Providers:     providers,
		Bookings:      bookings,
		Notifications: notifications,
		Storage:       store,
		Services:      services,
		Syslog:        syslog,
	}
}

// internalError records an unexpected failure in system_logs and replies with
// a generic 500. The original error text never reaches the client.
func (h *HandlerBundle) internalError(c *gin.Context, source string, err error) {
	utils.GetLogger().Error("unexpected handler error",
		zap.String("source", source),
		zap.String("path", c.FullPath()),
		zap.Error(err))

	if h.Syslog != nil {
		row := &models.SystemLog{
			ID:      uuid.New().String(),
			Level:   "error",
			Source:  source,
			Message: err.Error(),
			Context: map[string]string{
				"path":   c.FullPath(),
				"method": c.Request.Method,
			},
			CreatedAt: time.Now(),
		}
		if logErr := h.Syslog.Insert(c.Request.Context(), row); logErr != nil {
			utils.GetLogger().Warn("failed to persist system log", zap.Error(logErr))
		}
	}
	utils.JSONError(c, 500, "Internal server error")
}
