package handlers

import (
	"errors"
	"net/http"

	"trailhead/middleware"
	"trailhead/models"
	"trailhead/services/user"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler creates a user account and returns a session token.
func (h *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: email and password")
		return
	}

	resp, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered")
			return
		}
		h.internalError(c, "user.register", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginUserHandler authenticates a user and returns a session token.
func (h *HandlerBundle) LoginUserHandler(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: email and password")
		return
	}

	resp, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.internalError(c, "user.login", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserProfileHandler returns the authenticated user's profile.
func (h *HandlerBundle) GetUserProfileHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	u, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "user.profile", err)
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateFCMTokenHandler stores the device token used for push notifications.
func (h *HandlerBundle) UpdateFCMTokenHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	var req struct {
		FCMToken string `json:"fcm_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required field: fcm_token")
		return
	}
	if err := h.Users.UpdateFCMToken(c.Request.Context(), userID, req.FCMToken); err != nil {
		h.internalError(c, "user.fcm_token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
