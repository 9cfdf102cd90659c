package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nomadweather/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultGeocodingBaseURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingClient implements weather.Resolver against the Open-Meteo
// geocoding API. Each call is a fresh lookup for the single best match.
type GeocodingClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "geocoding",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &GeocodingClient{
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

// Resolve looks up the top candidate for query. A transport error or
// non-success status becomes a FetchError; an empty result set becomes a
// NotFoundError. Both carry the exact banner text shown to the user.
func (c *GeocodingClient) Resolve(ctx context.Context, query string) (weather.CityLocation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "1")
		values.Set("language", "en")
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithBreaker(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return weather.CityLocation{}, weather.NewFetchError(weather.MsgGeocodingFailed, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CityLocation{}, weather.NewFetchError(weather.MsgGeocodingFailed, err)
	}

	if len(payload.Results) == 0 {
		return weather.CityLocation{}, weather.NewNotFoundError(weather.MsgNoResults)
	}

	top := payload.Results[0]
	return weather.CityLocation{
		Name:      top.Name,
		Country:   top.Country,
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
	}, nil
}
