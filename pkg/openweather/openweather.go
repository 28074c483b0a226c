package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type DailyEntry struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Day float64 `json:"day"`
	} `json:"temp"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

type OneCallResponse struct {
	Daily []DailyEntry `json:"daily"`
}

type IOpenWeather interface {
	Forecast(ctx context.Context, lat, lon float64) (OneCallResponse, error)
}

type weatherClient struct {
	httpClient *http.Client
	log        *logrus.Logger
}

func New(log *logrus.Logger) IOpenWeather {
	return &weatherClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Forecast fetches the one-call daily forecast for the given coordinates.
// Minutely and hourly blocks are excluded; temperatures are metric.
func (w *weatherClient) Forecast(ctx context.Context, lat, lon float64) (OneCallResponse, error) {
	baseURL := os.Getenv("OPENWEATHER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("exclude", "minutely,hourly")
	params.Set("units", "metric")
	params.Set("appid", os.Getenv("OPENWEATHER_API_KEY"))

	reqURL := fmt.Sprintf("%s/data/2.5/onecall?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return OneCallResponse{}, err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"lat":   lat,
			"lon":   lon,
			"error": err.Error(),
		}).Error("Weather request failed")
		return OneCallResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.log.WithFields(logrus.Fields{
			"lat":    lat,
			"lon":    lon,
			"status": resp.StatusCode,
		}).Error("Weather request returned non-200 status")
		return OneCallResponse{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var body OneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		w.log.WithFields(logrus.Fields{
			"lat":   lat,
			"lon":   lon,
			"error": err.Error(),
		}).Error("Failed to decode weather response")
		return OneCallResponse{}, err
	}

	return body, nil
}
