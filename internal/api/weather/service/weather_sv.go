package weatherService

import (
	"Tripp/internal/api/weather"
	contextPkg "Tripp/pkg/context"
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *weatherService) GetForecast(c context.Context, query weather.ForecastQuery) (weather.ForecastResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	lat, err := strconv.ParseFloat(query.Lat, 64)
	if err != nil {
		return weather.ForecastResponse{}, weather.ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(query.Lon, 64)
	if err != nil {
		return weather.ForecastResponse{}, weather.ErrInvalidCoordinates
	}

	startDate, err := time.Parse(weather.DateLayout, query.StartDate)
	if err != nil {
		return weather.ForecastResponse{}, weather.ErrInvalidDate
	}
	endDate, err := time.Parse(weather.DateLayout, query.EndDate)
	if err != nil {
		return weather.ForecastResponse{}, weather.ErrInvalidDate
	}
	if endDate.Before(startDate) {
		return weather.ForecastResponse{}, weather.ErrInvalidDateRange
	}

	forecast, err := s.weather.Forecast(c, lat, lon)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Forecast fetch failed")
		return weather.ForecastResponse{}, weather.ErrForecastFailed
	}

	// Matching is done on calendar days so time zones and the hour encoded
	// in the provider's unix timestamps never shift an entry out of range.
	wanted := make(map[string]struct{})
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		wanted[d.Format(weather.DateLayout)] = struct{}{}
	}

	days := make([]weather.ForecastDay, 0, len(forecast.Daily))
	for _, entry := range forecast.Daily {
		date := time.Unix(entry.Dt, 0).UTC().Format(weather.DateLayout)
		if _, ok := wanted[date]; !ok {
			continue
		}

		day := weather.ForecastDay{
			Date: date,
			Temp: entry.Temp.Day,
		}
		if len(entry.Weather) > 0 {
			day.Weather = entry.Weather[0].Main
			day.Icon = entry.Weather[0].Icon
		}

		days = append(days, day)
	}

	return weather.ForecastResponse{Forecast: days}, nil
}
