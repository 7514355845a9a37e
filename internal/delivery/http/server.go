package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/delivery/http/handler"
	"github.com/trip-planner-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	tripHandler      *handler.TripHandler
	discoveryHandler *handler.DiscoveryHandler
	userHandler      *handler.UserHandler
	statsHandler     *handler.StatsHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tripHandler *handler.TripHandler,
	discoveryHandler *handler.DiscoveryHandler,
	userHandler *handler.UserHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Planner Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		tripHandler:      tripHandler,
		discoveryHandler: discoveryHandler,
		userHandler:      userHandler,
		statsHandler:     statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Trip routes. Статические сегменты регистрируются раньше :id
	api.Get("/trips", s.tripHandler.ListTrips)
	api.Post("/trips", s.tripHandler.CreateTrip)
	api.Get("/trips/upcoming", s.tripHandler.UpcomingTrips)
	api.Get("/trips/ongoing", s.tripHandler.CurrentTrips)
	api.Get("/trips/past", s.tripHandler.PastTrips)
	api.Get("/trips/selected", s.tripHandler.GetCurrentTrip)
	api.Get("/trips/:id", s.tripHandler.GetTrip)
	api.Put("/trips/:id", s.tripHandler.UpdateTrip)
	api.Delete("/trips/:id", s.tripHandler.DeleteTrip)
	api.Post("/trips/:id/select", s.tripHandler.SetCurrentTrip)
	api.Post("/trips/:id/complete", s.tripHandler.CompleteTrip)

	// Itinerary routes
	api.Post("/trips/:id/pois", s.tripHandler.AddPOI)
	api.Post("/trips/:id/pois/reorder", s.tripHandler.ReorderPOIs)
	api.Delete("/trips/:id/pois/:poi_id", s.tripHandler.RemovePOI)
	api.Post("/trips/:id/visits", s.tripHandler.MarkVisited)

	// Discovery routes
	api.Post("/discovery/nearby", s.discoveryHandler.Nearby)
	api.Post("/discovery/search", s.discoveryHandler.Search)
	api.Post("/discovery/travel-time", s.discoveryHandler.TravelTime)

	// Location routes
	api.Get("/location", s.discoveryHandler.GetLocation)
	api.Put("/location", s.discoveryHandler.SetLocation)

	// User routes
	api.Get("/user", s.userHandler.GetUser)
	api.Put("/user/preferences", s.userHandler.UpdatePreferences)
	api.Put("/user/preferences/categories", s.userHandler.SetFavoriteCategories)
	api.Post("/user/onboarding/complete", s.userHandler.CompleteOnboarding)

	// Stats
	api.Get("/stats", s.statsHandler.GetStats)
	api.Post("/stats/refresh", s.statsHandler.RefreshStats)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber-приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
