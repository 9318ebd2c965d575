package handlers

import (
	"CareSync/middlewares"
	"CareSync/models"
	"CareSync/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	service *services.ProviderService
}

func NewProviderHandler(service *services.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// ListProviders returns the provider directory for any authenticated caller.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	providers, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers, "count": len(providers)})
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())
	providerID := c.Param("id")

	provider, err := h.service.Get(c.Request.Context(), claims, providerID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, provider, http.StatusOK)
}

func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	var req models.ProviderProfileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	provider, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, provider, http.StatusCreated)
}

func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())
	providerID := c.Param("id")

	var req models.ProviderProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	provider, err := h.service.Update(c.Request.Context(), claims, providerID, req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, provider, http.StatusOK)
}
