package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"trailhead/middleware"
	"trailhead/models"
	"trailhead/services/provider"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type providerRegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Description string `json:"description,omitempty"`
}

// RegisterProviderHandler creates a provider account.
func (h *HandlerBundle) RegisterProviderHandler(c *gin.Context) {
	var req providerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: name, email and password")
		return
	}

	p := &models.Provider{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	}
	resp, err := h.Providers.Register(c.Request.Context(), p, req.Password)
	if err != nil {
		if errors.Is(err, provider.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered")
			return
		}
		h.internalError(c, "provider.register", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginProviderHandler authenticates a provider.
func (h *HandlerBundle) LoginProviderHandler(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: email and password")
		return
	}

	resp, err := h.Providers.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, provider.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.internalError(c, "provider.login", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProviderProfileHandler returns the authenticated provider's record.
func (h *HandlerBundle) GetProviderProfileHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	p, err := h.Providers.GetByID(c.Request.Context(), providerID)
	if err != nil {
		h.internalError(c, "provider.profile", err)
		return
	}
	if p == nil {
		utils.JSONError(c, http.StatusNotFound, "Provider not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateServiceHandler publishes a new bookable service for the provider.
func (h *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload")
		return
	}

	created, err := h.Providers.CreateService(c.Request.Context(), providerID, &svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler replaces a provider-owned service configuration.
func (h *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload")
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.Providers.UpdateService(c.Request.Context(), providerID, &svc)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrServiceNotFound):
			utils.JSONError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, provider.ErrNotOwner):
			utils.JSONError(c, http.StatusNotFound, "Service not found")
		default:
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListProviderServicesHandler lists the provider's own services.
func (h *HandlerBundle) ListProviderServicesHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	services, err := h.Providers.ListServices(c.Request.Context(), providerID)
	if err != nil {
		h.internalError(c, "provider.list_services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UploadServicePhotoHandler uploads a photo for a provider-owned service and
// stores the resulting URL on the service record.
func (h *HandlerBundle) UploadServicePhotoHandler(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	serviceID := c.Param("id")

	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Photo uploads are not configured")
		return
	}

	svc, err := h.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		h.internalError(c, "provider.upload_photo", err)
		return
	}
	if svc == nil || svc.ProviderID != providerID {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing photo file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.internalError(c, "provider.upload_photo", err)
		return
	}
	defer file.Close()

	publicID := fmt.Sprintf("%s-%s", serviceID, uuid.New().String()[:8])
	url, err := h.Storage.UploadServicePhoto(c.Request.Context(), publicID, file)
	if err != nil {
		h.internalError(c, "provider.upload_photo", err)
		return
	}

	svc.PhotoURL = url
	if _, err := h.Providers.UpdateService(c.Request.Context(), providerID, svc); err != nil {
		h.internalError(c, "provider.upload_photo", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
