package handlers

import (
	"net/http"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, login and the current user
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Register a user in one of the allow-listed tenants
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body service.SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{} "Created user with tenant context"
// @Failure 400 {object} map[string]interface{} "Missing fields or invalid tenant"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email, password and tenantSlug are required"})
		return
	}

	user, err := h.service.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user":    user,
	})
}

// Login handles POST /auth/login
// @Summary Authenticate a user
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Token and user profile"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the authenticated user with tenant usage context
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	user, err := h.service.Me(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
