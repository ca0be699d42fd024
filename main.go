package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/controllers"
	"github.com/mehmood09/restaurant-system/database"
	"github.com/mehmood09/restaurant-system/middleware"
	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
	"github.com/mehmood09/restaurant-system/routes"
	"github.com/mehmood09/restaurant-system/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- Database ---
	if err := database.Connect(cfg.DSN()); err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	if err := models.Migrate(database.DB); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	// --- Redis (optional menu cache) ---
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("Failed to parse REDIS_URL, menu cache disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}

	// --- Dependency injection ---
	userRepo := repository.NewGormUserRepository(database.DB)
	categoryRepo := repository.NewGormCategoryRepository(database.DB)
	menuItemRepo := repository.NewGormMenuItemRepository(database.DB)
	cartRepo := repository.NewGormCartRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService, logger)
	menuService := services.NewMenuService(categoryRepo, menuItemRepo, logger)
	cartService := services.NewCartService(cartRepo, menuItemRepo, logger)
	orderService := services.NewOrderService(orderRepo, cartRepo, logger)
	analyticsService := services.NewAnalyticsService(orderRepo, logger)

	menuCache := controllers.NewCacheManager(redisClient, logger)

	ctrl := &routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Menu:      controllers.NewMenuController(menuService, menuCache),
		Cart:      controllers.NewCartController(cartService),
		Order:     controllers.NewOrderController(orderService, authService),
		Category:  controllers.NewCategoryController(menuService, menuCache),
		MenuItem:  controllers.NewMenuItemController(menuService, menuCache),
		Analytics: controllers.NewAnalyticsController(analyticsService),
	}

	// --- HTTP router & middleware ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, ctrl, tokenService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "restaurant-system"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Restaurant system started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		}
	}
	if err := database.Close(); err != nil {
		logger.Error("Database close error", zap.Error(err))
	}

	logger.Info("Restaurant system stopped gracefully")
}
