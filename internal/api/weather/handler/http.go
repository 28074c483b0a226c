package weatherHandler

import (
	weatherService "Tripp/internal/api/weather/service"
	"Tripp/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WeatherHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	weatherService weatherService.WeatherService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	weatherService weatherService.WeatherService,
) *WeatherHandler {
	return &WeatherHandler{
		log:            log,
		middleware:     middleware,
		weatherService: weatherService,
	}
}

func (h *WeatherHandler) Start(srv fiber.Router) {
	weather := srv.Group("/weather")

	weather.Get("/forecast", h.HandleGetForecast)
}
