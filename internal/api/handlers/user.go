package handlers

import (
	"net/http"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user management
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// InviteUser handles POST /users/invite
// @Summary Invite a user into the caller's tenant
// @Description Admin creates a user with a default password
// @Tags users
// @Accept json
// @Produce json
// @Param invite body service.InviteRequest true "Invite data"
// @Success 201 {object} map[string]interface{} "Invited user"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Security BearerAuth
// @Router /users/invite [post]
func (h *UserHandler) InviteUser(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email is required"})
		return
	}

	user, err := h.service.Invite(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User invited successfully",
		"user":    user,
	})
}
