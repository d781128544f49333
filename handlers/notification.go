package handlers

import (
	"net/http"

	"trailhead/middleware"
	"trailhead/models"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
)

// ListUserNotificationsHandler returns the caller's in-app notifications.
func (h *HandlerBundle) ListUserNotificationsHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	notifications, err := h.Notifications.ListForRecipient(c.Request.Context(), userID, models.RecipientUser)
	if err != nil {
		h.internalError(c, "notification.list_user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// ListProviderNotificationsHandler returns the provider's notifications.
func (h *HandlerBundle) ListProviderNotificationsHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	notifications, err := h.Notifications.ListForRecipient(c.Request.Context(), providerID, models.RecipientProvider)
	if err != nil {
		h.internalError(c, "notification.list_provider", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler flips the read flag on a notification.
func (h *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
