package handlers

import (
	"net/http"

	"trailhead/utils"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler lists active services for browsing, optionally
// filtered by category. Public.
func (h *HandlerBundle) ListServicesHandler(c *gin.Context) {
	services, err := h.Services.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.internalError(c, "service.list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler returns one service by ID. Public.
func (h *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := h.Services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.internalError(c, "service.get", err)
		return
	}
	if svc == nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}
