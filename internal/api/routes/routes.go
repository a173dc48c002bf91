package routes

import (
	"github.com/suwubh/saas-notes-app/internal/api/handlers"
	"github.com/suwubh/saas-notes-app/internal/api/middleware"
	"github.com/suwubh/saas-notes-app/internal/auth"
	"github.com/suwubh/saas-notes-app/internal/config"
	"github.com/suwubh/saas-notes-app/internal/repository"
	"github.com/suwubh/saas-notes-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize token/password service and middleware
	tokenService := auth.NewAuthService(cfg.JWTSecret, cfg.JWTExpiryHours)
	authMiddleware := auth.NewAuthMiddleware(tokenService, tenantRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tenantRepo, noteRepo, tokenService, validate, cfg.AllowedTenants)
	noteService := service.NewNoteService(noteRepo, tenantRepo, validate)
	tenantService := service.NewTenantService(tenantRepo, noteRepo)
	userService := service.NewUserService(userRepo, tokenService, validate, cfg.InviteDefaultPassword)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	userHandler := handlers.NewUserHandler(userService)

	// Health and index routes
	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Note routes: authenticated, tenant context required
	notes := router.Group("/notes")
	notes.Use(authMiddleware.RequireAuth())
	notes.Use(authMiddleware.ExtractTenant())
	notes.Use(authMiddleware.RequireTenant())
	notes.Use(authMiddleware.RequireSameTenant())
	{
		notes.POST("", noteHandler.CreateNote)
		notes.GET("", noteHandler.ListNotes)
		notes.GET("/:id", noteHandler.GetNote)
		notes.PUT("/:id", noteHandler.UpdateNote)
		notes.DELETE("/:id", noteHandler.DeleteNote)
	}

	// Tenant routes: admin only; the slug/identity cross-check happens in
	// the service so foreign slugs yield 403, not 404
	tenants := router.Group("/tenants")
	tenants.Use(authMiddleware.RequireAuth())
	tenants.Use(authMiddleware.RequireAdmin())
	{
		tenants.POST("/:slug/upgrade", tenantHandler.UpgradeTenant)
		tenants.GET("/:slug/stats", tenantHandler.TenantStats)
	}

	// User routes: admin only
	users := router.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	users.Use(authMiddleware.RequireAdmin())
	{
		users.POST("/invite", userHandler.InviteUser)
	}

	return router
}
