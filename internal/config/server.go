package config

import (
	"Tripp/database/postgres"
	authHandler "Tripp/internal/api/auth/handler"
	authRepository "Tripp/internal/api/auth/repository"
	authService "Tripp/internal/api/auth/service"
	budgetHandler "Tripp/internal/api/budget/handler"
	budgetRepository "Tripp/internal/api/budget/repository"
	budgetService "Tripp/internal/api/budget/service"
	expenseHandler "Tripp/internal/api/expense/handler"
	expenseRepository "Tripp/internal/api/expense/repository"
	expenseService "Tripp/internal/api/expense/service"
	mapsHandler "Tripp/internal/api/maps/handler"
	mapsRepository "Tripp/internal/api/maps/repository"
	mapsService "Tripp/internal/api/maps/service"
	tripHandler "Tripp/internal/api/trip/handler"
	tripRepository "Tripp/internal/api/trip/repository"
	tripService "Tripp/internal/api/trip/service"
	weatherHandler "Tripp/internal/api/weather/handler"
	weatherService "Tripp/internal/api/weather/service"
	"Tripp/internal/middleware"
	"Tripp/pkg/bcrypt"
	"Tripp/pkg/geocode"
	"Tripp/pkg/openweather"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	bcryptUtils   bcrypt.IBcrypt
	geocodeClient geocode.IGeocode
	weatherClient openweather.IOpenWeather
	handlers      []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Migrate(db); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to run migrations: %v", err)
			}
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithGeocodeClient() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before the geocode client")
		}
		s.geocodeClient = geocode.New(s.log)
		return nil
	}
}

func WithWeatherClient() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before the weather client")
		}
		s.weatherClient = openweather.New(s.log)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Trip Domain
	tripRepo := tripRepository.New(s.db, s.log)
	tripServices := tripService.New(s.log, tripRepo)
	tripHandlers := tripHandler.New(s.log, s.validator, s.middleware, tripServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.New(s.log, budgetRepo)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Expense Domain
	expenseRepo := expenseRepository.New(s.db, s.log)
	expenseServices := expenseService.New(s.log, expenseRepo)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	// Maps Domain
	mapsRepo := mapsRepository.New(s.db, s.log)
	mapsServices := mapsService.New(s.log, mapsRepo, s.geocodeClient)
	mapsHandlers := mapsHandler.New(s.log, s.validator, s.middleware, mapsServices)

	// Weather Domain
	weatherServices := weatherService.New(s.log, s.weatherClient)
	weatherHandlers := weatherHandler.New(s.log, s.middleware, weatherServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		tripHandlers,
		budgetHandlers,
		expenseHandlers,
		mapsHandlers,
		weatherHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}

	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
