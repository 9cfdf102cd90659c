package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nomadweather/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultForecastBaseURL is the Open-Meteo forecast endpoint.
const DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"is_day",
		"weather_code",
		"wind_speed_10m",
	}
	dailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
	}
)

// ForecastClient implements weather.Fetcher against the Open-Meteo forecast
// API. Current conditions and the daily forecast come back in one call, with
// timezone resolution delegated to the provider.
type ForecastClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ForecastClient{
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

// forecastPayload mirrors the provider response. Pointer fields let a missing
// value flow through as nil instead of failing the whole snapshot.
type forecastPayload struct {
	Current struct {
		Temperature2m       *float64 `json:"temperature_2m"`
		RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		IsDay               *int     `json:"is_day"`
		WeatherCode         *int     `json:"weather_code"`
		WindSpeed10m        *float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Fetch retrieves and normalizes the snapshot for loc. The current reading's
// date is daily.time[0] ("today" per the forecast's own local calendar), so
// the high/low lookup for today always lands on index 0.
func (c *ForecastClient) Fetch(ctx context.Context, loc weather.CityLocation) (weather.WeatherSnapshot, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
		values.Set("current", strings.Join(currentFields, ","))
		values.Set("daily", strings.Join(dailyFields, ","))
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithBreaker(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return weather.WeatherSnapshot{}, weather.NewFetchError(weather.MsgWeatherFailed, err)
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherSnapshot{}, weather.NewFetchError(weather.MsgWeatherFailed, err)
	}

	return normalizeSnapshot(payload), nil
}

func normalizeSnapshot(payload forecastPayload) weather.WeatherSnapshot {
	daily := &weather.DailyForecast{
		Time:             truncate(payload.Daily.Time, weather.MaxForecastDays),
		WeatherCode:      truncate(payload.Daily.WeatherCode, weather.MaxForecastDays),
		Temperature2mMax: truncate(payload.Daily.Temperature2mMax, weather.MaxForecastDays),
		Temperature2mMin: truncate(payload.Daily.Temperature2mMin, weather.MaxForecastDays),
	}

	var date string
	if len(daily.Time) > 0 {
		date = daily.Time[0]
	}

	now := payload.Current
	current := &weather.CurrentConditions{
		Date:                date,
		Temperature:         now.Temperature2m,
		ApparentTemperature: now.ApparentTemperature,
		Humidity:            now.RelativeHumidity2m,
		WeatherCode:         now.WeatherCode,
		Description:         weather.DescribeWeatherCode(now.WeatherCode),
		Wind:                now.WindSpeed10m,
		IsDay:               now.IsDay != nil && *now.IsDay != 0,
	}

	return weather.WeatherSnapshot{Current: current, Daily: daily}
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
