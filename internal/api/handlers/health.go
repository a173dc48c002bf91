package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health and readiness probes
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Status"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

// Ready handles GET /health/ready and verifies database connectivity
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Index handles GET / and lists the API surface
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SaaS Notes API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"health": "/health",
			"auth": gin.H{
				"signup": "POST /auth/signup",
				"login":  "POST /auth/login",
				"me":     "GET /auth/me",
			},
			"notes": gin.H{
				"create": "POST /notes",
				"list":   "GET /notes",
				"get":    "GET /notes/:id",
				"update": "PUT /notes/:id",
				"delete": "DELETE /notes/:id",
			},
			"tenants": gin.H{
				"upgrade": "POST /tenants/:slug/upgrade",
				"stats":   "GET /tenants/:slug/stats",
			},
			"users": gin.H{
				"invite": "POST /users/invite",
			},
		},
		"test_accounts": []string{
			"admin@acme.test (Admin, Acme)",
			"user@acme.test (Member, Acme)",
			"admin@globex.test (Admin, Globex)",
			"user@globex.test (Member, Globex)",
		},
		"note": `All test accounts use password: "password"`,
	})
}
