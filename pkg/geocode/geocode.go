package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type IGeocode interface {
	Lookup(ctx context.Context, destination string) (*LatLng, error)
}

type geocodeClient struct {
	httpClient *http.Client
	log        *logrus.Logger
}

func New(log *logrus.Logger) IGeocode {
	return &geocodeClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Lookup resolves a free-form destination to the coordinates of the first
// geocoding result. A lookup with zero results returns (nil, nil).
func (g *geocodeClient) Lookup(ctx context.Context, destination string) (*LatLng, error) {
	baseURL := os.Getenv("GOOGLE_MAPS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}

	params := url.Values{}
	params.Set("address", destination)
	params.Set("key", os.Getenv("GOOGLE_MAPS_API_KEY"))

	reqURL := fmt.Sprintf("%s/maps/api/geocode/json?%s", baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"destination": destination,
			"error":       err.Error(),
		}).Error("Geocode request failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.WithFields(logrus.Fields{
			"destination": destination,
			"status":      resp.StatusCode,
		}).Error("Geocode request returned non-200 status")
		return nil, fmt.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.log.WithFields(logrus.Fields{
			"destination": destination,
			"error":       err.Error(),
		}).Error("Failed to decode geocode response")
		return nil, err
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	location := body.Results[0].Geometry.Location
	return &location, nil
}
