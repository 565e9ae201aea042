package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/config"
	"github.com/tourguide-client/internal/delivery/http/handler"
	"github.com/tourguide-client/internal/delivery/http/middleware"
	"github.com/tourguide-client/internal/domain/repository"
	"github.com/tourguide-client/internal/pkg/auth"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	authHandler       *handler.AuthHandler
	tourHandler       *handler.TourHandler
	enrollmentHandler *handler.EnrollmentHandler

	authMiddleware fiber.Handler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *auth.JWTManager,
	users repository.UserStore,
	authHandler *handler.AuthHandler,
	tourHandler *handler.TourHandler,
	enrollmentHandler *handler.EnrollmentHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tour Guide API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		authHandler:       authHandler,
		tourHandler:       tourHandler,
		enrollmentHandler: enrollmentHandler,
		authMiddleware:    middleware.Auth(jwtManager, users, logger),
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
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	api.Post("/signup", s.authHandler.Signup)
	api.Post("/auth/login", s.authHandler.Login)
	api.Get("/auth/me", s.authMiddleware, s.authHandler.Me)

	// Tour routes
	api.Get("/tours", s.authMiddleware, s.tourHandler.List)
	api.Get("/tours/:id", s.authMiddleware, s.tourHandler.Get)
	api.Post("/tours", s.authMiddleware, s.tourHandler.Create)

	// User tour routes
	api.Post("/user-tours/enroll", s.authMiddleware, s.enrollmentHandler.Enroll)
	api.Get("/user-tours", s.authMiddleware, s.enrollmentHandler.List)
	api.Post("/location/update", s.authMiddleware, s.enrollmentHandler.UpdateLocation)
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

// App возвращает fiber-приложение (используется в тестах).
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
			"detail": err.Error(),
		})
	}
}
