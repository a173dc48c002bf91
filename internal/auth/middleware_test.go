package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/database/models"
	"github.com/suwubh/saas-notes-app/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware chain
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	service        *auth.AuthService
	middleware     *auth.AuthMiddleware
	router         *gin.Engine

	tenant   *models.Tenant
	identity auth.Identity
	token    string
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.service = auth.NewAuthService("test-secret", 1)
	suite.middleware = auth.NewAuthMiddleware(suite.service, suite.mockTenantRepo)
	suite.router = gin.New()

	suite.tenant = &models.Tenant{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Acme",
		Slug:             "acme",
		SubscriptionPlan: models.PlanFree,
	}
	suite.identity = auth.Identity{
		UserID:   uuid.New(),
		TenantID: suite.tenant.ID,
		Email:    "user@acme.test",
		Role:     models.RoleMember,
	}

	token, err := suite.service.GenerateJWT(suite.identity)
	require.NoError(suite.T(), err)
	suite.token = token
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) serve(method, url string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestRequireAuth tests that a valid token reaches the handler with identity set
func (suite *AuthMiddlewareTestSuite) TestRequireAuth() {
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), suite.identity, identity)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/protected", map[string]string{
		"Authorization": "Bearer " + suite.token,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestRequireAuthMissingHeader tests the 401 when no token is sent
func (suite *AuthMiddlewareTestSuite) TestRequireAuthMissingHeader() {
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/protected", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthBadFormat tests rejecting a header without the Bearer prefix
func (suite *AuthMiddlewareTestSuite) TestRequireAuthBadFormat() {
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/protected", map[string]string{
		"Authorization": suite.token,
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthTamperedToken tests rejecting a token with a broken signature
func (suite *AuthMiddlewareTestSuite) TestRequireAuthTamperedToken() {
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/protected", map[string]string{
		"Authorization": "Bearer " + suite.token + "x",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAdmin tests that member tokens are rejected on admin routes
func (suite *AuthMiddlewareTestSuite) TestRequireAdmin() {
	suite.router.GET("/admin", suite.middleware.RequireAuth(), suite.middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/admin", map[string]string{
		"Authorization": "Bearer " + suite.token,
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestRequireAdminAllowsAdmin tests that admin tokens pass
func (suite *AuthMiddlewareTestSuite) TestRequireAdminAllowsAdmin() {
	admin := suite.identity
	admin.Role = models.RoleAdmin
	token, err := suite.service.GenerateJWT(admin)
	require.NoError(suite.T(), err)

	suite.router.GET("/admin", suite.middleware.RequireAuth(), suite.middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.serve(http.MethodGet, "/admin", map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestExtractTenantFromHeader tests resolving the tenant from X-Tenant-Slug
func (suite *AuthMiddlewareTestSuite) TestExtractTenantFromHeader() {
	suite.mockTenantRepo.EXPECT().
		GetBySlug("acme").
		Return(suite.tenant, nil).
		Times(1)

	suite.router.GET("/scoped",
		suite.middleware.RequireAuth(),
		suite.middleware.ExtractTenant(),
		suite.middleware.RequireTenant(),
		func(c *gin.Context) {
			tenant, ok := auth.GetTenant(c)
			assert.True(suite.T(), ok)
			assert.Equal(suite.T(), suite.tenant.ID, tenant.ID)
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	recorder := suite.serve(http.MethodGet, "/scoped", map[string]string{
		"Authorization": "Bearer " + suite.token,
		"X-Tenant-Slug": "acme",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestExtractTenantFallsBackToIdentity tests the fallback when no slug is sent
func (suite *AuthMiddlewareTestSuite) TestExtractTenantFallsBackToIdentity() {
	suite.mockTenantRepo.EXPECT().
		GetByID(suite.tenant.ID).
		Return(suite.tenant, nil).
		Times(1)

	suite.router.GET("/scoped",
		suite.middleware.RequireAuth(),
		suite.middleware.ExtractTenant(),
		suite.middleware.RequireTenant(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	recorder := suite.serve(http.MethodGet, "/scoped", map[string]string{
		"Authorization": "Bearer " + suite.token,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestExtractTenantUnknownSlug tests the 404 for an unknown slug
func (suite *AuthMiddlewareTestSuite) TestExtractTenantUnknownSlug() {
	suite.mockTenantRepo.EXPECT().
		GetBySlug("nonesuch").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.router.GET("/scoped",
		suite.middleware.RequireAuth(),
		suite.middleware.ExtractTenant(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	recorder := suite.serve(http.MethodGet, "/scoped", map[string]string{
		"Authorization": "Bearer " + suite.token,
		"X-Tenant-Slug": "nonesuch",
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestRequireSameTenant tests the 403 when the resolved tenant is foreign
func (suite *AuthMiddlewareTestSuite) TestRequireSameTenant() {
	globex := &models.Tenant{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Globex",
		Slug:             "globex",
		SubscriptionPlan: models.PlanFree,
	}

	suite.mockTenantRepo.EXPECT().
		GetBySlug("globex").
		Return(globex, nil).
		Times(1)

	suite.router.GET("/scoped",
		suite.middleware.RequireAuth(),
		suite.middleware.ExtractTenant(),
		suite.middleware.RequireTenant(),
		suite.middleware.RequireSameTenant(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	recorder := suite.serve(http.MethodGet, "/scoped", map[string]string{
		"Authorization": "Bearer " + suite.token,
		"X-Tenant-Slug": "globex",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
