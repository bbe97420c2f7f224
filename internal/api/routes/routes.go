package routes

import (
	"net/http"

	"asset-allocation-backend/internal/api/handlers"
	"asset-allocation-backend/internal/api/middleware"
	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/config"
	"asset-allocation-backend/internal/repository"
	"asset-allocation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize services
	allocationService := service.NewAllocationService(
		allocationRepo,
		assetRepo,
		userRepo,
		txManager,
		service.NewOwnershipEnforcer(),
		validator,
		service.AllocationServiceOptions{
			StrictTransitions: cfg.AllocationStrictTransitions,
			AllowRedecision:   cfg.AllocationAllowRedecision,
		},
	)
	assetService := service.NewAssetService(assetRepo, userRepo, validator)
	userService := service.NewUserService(userRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize auth service")
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	assetHandler := handlers.NewAssetHandler(assetService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Login is the only unauthenticated API endpoint
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/refresh", authHandler.Refresh)

		// Allocation routes
		allocations := protected.Group("/allocation")
		{
			allocations.GET("", allocationHandler.ListAllocations)
			allocations.POST("", allocationHandler.CreateAllocation)
			allocations.GET("/user/:id", allocationHandler.ListAllocationsByUser)
			allocations.GET("/asset/:id", allocationHandler.ListAllocationsByAsset)
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.PUT("/:id", allocationHandler.UpdateAllocation)
			allocations.PUT("/:id/approve", allocationHandler.ApproveAllocation)
			allocations.PUT("/:id/reject", allocationHandler.RejectAllocation)
		}

		// Asset routes
		assets := protected.Group("/asset")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PUT("/:id", assetHandler.UpdateAsset)
		}

		// User directory routes
		users := protected.Group("/user")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Success: false, Error: "route not found"})
	})

	return router, nil
}
