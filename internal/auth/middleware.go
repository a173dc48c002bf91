package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/suwubh/saas-notes-app/internal/database/models"
	apperrors "github.com/suwubh/saas-notes-app/internal/errors"
	"github.com/suwubh/saas-notes-app/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	identityKey = "identity"
	tenantKey   = "tenant"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service    *AuthService
	tenantRepo repository.TenantRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, tenantRepo repository.TenantRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service, tenantRepo: tenantRepo}
}

// RequireAuth validates JWT tokens and sets the caller identity on the
// context. It fails closed: any missing, malformed or expired token is a 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": apperrors.ErrMissingAuthHeader.Error()})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			c.Abort()
			return
		}

		identity, err := IdentityFromClaims(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("email", identity.Email)

		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}

		if !identity.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrAdminRequired.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ExtractTenant resolves tenant context from the :slug path parameter or the
// X-Tenant-Slug header, falling back to the authenticated caller's tenant.
func (m *AuthMiddleware) ExtractTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			slug = c.GetHeader("X-Tenant-Slug")
		}

		if slug == "" {
			identity, ok := GetIdentity(c)
			if !ok {
				c.Next()
				return
			}
			tenant, err := m.tenantRepo.GetByID(identity.TenantID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.Next()
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
				c.Abort()
				return
			}
			c.Set(tenantKey, tenant)
			c.Next()
			return
		}

		tenant, err := m.tenantRepo.GetBySlug(slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": apperrors.ErrTenantNotFound.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
			}
			c.Abort()
			return
		}

		c.Set(tenantKey, tenant)
		c.Next()
	}
}

// RequireTenant rejects requests that carry no tenant context. Must run
// after ExtractTenant.
func (m *AuthMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetTenant(c); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tenant context required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSameTenant enforces the multi-tenancy crux: the resolved tenant
// must be the caller's own. A caller authenticated under tenant A never acts
// on tenant B, whatever the URL says.
func (m *AuthMiddleware) RequireSameTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}
		tenant, ok := GetTenant(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tenant context required"})
			c.Abort()
			return
		}

		if tenant.ID != identity.TenantID {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": apperrors.ErrTenantMismatch.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity is a helper function to extract the caller identity from context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}

// GetTenant is a helper function to extract the resolved tenant from context
func GetTenant(c *gin.Context) (*models.Tenant, bool) {
	value, exists := c.Get(tenantKey)
	if !exists {
		return nil, false
	}

	tenant, ok := value.(*models.Tenant)
	return tenant, ok
}
