package routes

import (
	"net/http"
	"time"

	"wayfare/internal/analytics"
	"wayfare/internal/auth"
	"wayfare/internal/bookings"
	"wayfare/internal/cancellation"
	"wayfare/internal/notifications"
	"wayfare/internal/shared/config"
	"wayfare/internal/shared/database"
	"wayfare/internal/travel"
	"wayfare/internal/users"
	"wayfare/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	notifier     notifications.NotificationService
	cacheService cache.Service
	travelRepo   travel.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier notifications.NotificationService) *Router {
	r := &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.Redis)
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)

		// Travel routes come first; bookings reuse the travel repository.
		r.setupTravelRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "wayfare-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "wayfare-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)

	users.SetupUserRoutes(rg, userController)
}

func (r *Router) setupTravelRoutes(rg *gin.RouterGroup) {
	travelRepo := travel.NewRepository(r.db.GetPostgreSQL())
	travelService := travel.NewService(travelRepo)
	if r.cacheService != nil {
		travelService.SetCacheService(r.cacheService)
	}
	travelController := travel.NewController(travelService)

	// Kept for booking wiring below.
	r.travelRepo = travelRepo

	travel.SetupTravelRoutes(rg, travelController)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	policy := cancellation.NewRefundPolicy(r.config.Booking.CancellationCutoff)

	cancellationRepo := cancellation.NewRepository(r.db.GetPostgreSQL())
	cancellationService := cancellation.NewService(cancellationRepo, policy)
	cancellationController := cancellation.NewController(cancellationService)

	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.travelRepo,
		cancellationService, policy, r.notifier, r.config.Booking)
	if r.cacheService != nil {
		bookingService.SetCacheService(r.cacheService)
	}
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
	cancellation.SetupCancellationRoutes(rg, cancellationController)
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	if r.cacheService != nil {
		analyticsService.SetCacheService(r.cacheService)
	}
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}
