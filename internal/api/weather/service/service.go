package weatherService

import (
	"Tripp/internal/api/weather"
	"Tripp/pkg/openweather"
	"context"
	"github.com/sirupsen/logrus"
)

type WeatherService interface {
	GetForecast(c context.Context, query weather.ForecastQuery) (weather.ForecastResponse, error)
}

type weatherService struct {
	log     *logrus.Logger
	weather openweather.IOpenWeather
}

func New(log *logrus.Logger, weatherClient openweather.IOpenWeather) WeatherService {
	return &weatherService{
		log:     log,
		weather: weatherClient,
	}
}
