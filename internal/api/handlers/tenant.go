package handlers

import (
	"net/http"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenant plan operations
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// UpgradeTenant handles POST /tenants/:slug/upgrade
// @Summary Upgrade a tenant to the pro plan
// @Description One-way free to pro transition for the caller's own tenant
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} map[string]interface{} "Upgraded tenant"
// @Failure 403 {object} map[string]interface{} "Not admin or foreign tenant"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Already on pro plan"
// @Security BearerAuth
// @Router /tenants/{slug}/upgrade [post]
func (h *TenantHandler) UpgradeTenant(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	tenant, err := h.service.Upgrade(identity, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully upgraded to Pro plan! Note limits have been removed.",
		"tenant":  tenant,
	})
}

// TenantStats handles GET /tenants/:slug/stats
// @Summary Tenant usage stats
// @Description Note count, plan limit and upgrade availability for the caller's own tenant
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} map[string]interface{} "Stats object"
// @Failure 403 {object} map[string]interface{} "Not admin or foreign tenant"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{slug}/stats [get]
func (h *TenantHandler) TenantStats(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	stats, err := h.service.Stats(identity, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
