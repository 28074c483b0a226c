package tripHandler

import (
	tripService "Tripp/internal/api/trip/service"
	"Tripp/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TripHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	tripService tripService.TripService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	tripService tripService.TripService,
) *TripHandler {
	return &TripHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		tripService: tripService,
	}
}

func (h *TripHandler) Start(srv fiber.Router) {
	trips := srv.Group("/trips")

	trips.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateTrip)
	trips.Get("/", h.middleware.NewTokenMiddleware, h.HandleListTrips)
	trips.Get("/:tripId", h.middleware.NewTokenMiddleware, h.HandleGetTrip)
	trips.Put("/:tripId", h.middleware.NewTokenMiddleware, h.HandleUpdateTrip)
	trips.Delete("/:tripId", h.middleware.NewTokenMiddleware, h.HandleDeleteTrip)
}
