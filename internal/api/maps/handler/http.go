package mapsHandler

import (
	mapsService "Tripp/internal/api/maps/service"
	"Tripp/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MapsHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	mapsService mapsService.MapsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	mapsService mapsService.MapsService,
) *MapsHandler {
	return &MapsHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		mapsService: mapsService,
	}
}

func (h *MapsHandler) Start(srv fiber.Router) {
	maps := srv.Group("/maps")

	maps.Get("/coordinates", h.HandleGetCoordinates)
	maps.Post("/locations", h.middleware.NewTokenMiddleware, h.HandleSaveLocation)
	maps.Get("/locations/:tripId", h.middleware.NewTokenMiddleware, h.HandleListLocations)
}
