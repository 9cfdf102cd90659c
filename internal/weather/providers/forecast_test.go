package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nomadweather/weather-dashboard/internal/weather"
)

const forecastBody = `{
	"current": {
		"temperature_2m": 18.4,
		"relative_humidity_2m": 63,
		"apparent_temperature": 17.1,
		"is_day": 1,
		"weather_code": 2,
		"wind_speed_10m": 12.6
	},
	"daily": {
		"time": ["2024-05-01","2024-05-02","2024-05-03","2024-05-04","2024-05-05","2024-05-06","2024-05-07","2024-05-08"],
		"weather_code": [2,63,0,45,95,71,3,1],
		"temperature_2m_max": [21.3,17.0,19.5,14.2,16.8,8.1,18.0,20.2],
		"temperature_2m_min": [11.8,9.2,8.7,6.1,10.4,1.3,9.9,10.8]
	}
}`

func TestForecastFetchNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("current"); got != "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,weather_code,wind_speed_10m" {
			t.Errorf("current = %q", got)
		}
		if got := q.Get("daily"); got != "weather_code,temperature_2m_max,temperature_2m_min" {
			t.Errorf("daily = %q", got)
		}
		if got := q.Get("timezone"); got != "auto" {
			t.Errorf("timezone = %q, want auto", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	client := NewForecastClient(server.Client(), server.URL)
	snap, err := client.Fetch(context.Background(), weather.CityLocation{Latitude: 48.8566, Longitude: 2.3522})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := snap.Current
	if cur == nil {
		t.Fatal("expected current conditions")
	}
	if cur.Date != "2024-05-01" {
		t.Errorf("date = %q, want first daily row", cur.Date)
	}
	if cur.Description != "Partly cloudy" {
		t.Errorf("description = %q, want Partly cloudy", cur.Description)
	}
	if !cur.IsDay {
		t.Error("is_day=1 should coerce to true")
	}
	if cur.Temperature == nil || *cur.Temperature != 18.4 {
		t.Errorf("temperature = %v, want 18.4", cur.Temperature)
	}

	if snap.Daily == nil {
		t.Fatal("expected daily forecast")
	}
	if len(snap.Daily.Time) != weather.MaxForecastDays {
		t.Errorf("daily rows = %d, want truncation to %d", len(snap.Daily.Time), weather.MaxForecastDays)
	}

	// current.date must land on index 0 of the daily columns.
	high, low := snap.Daily.HighLowFor(cur.Date)
	if high == nil || *high != 21.3 {
		t.Errorf("today high = %v, want 21.3", high)
	}
	if low == nil || *low != 11.8 {
		t.Errorf("today low = %v, want 11.8", low)
	}
}

// TestForecastFetchMissingFields feeds a sparse payload and expects nil view
// model fields rather than a hard failure.
func TestForecastFetchMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{},"daily":{"time":[],"weather_code":[],"temperature_2m_max":[],"temperature_2m_min":[]}}`))
	}))
	defer server.Close()

	client := NewForecastClient(server.Client(), server.URL)
	snap, err := client.Fetch(context.Background(), weather.CityLocation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := snap.Current
	if cur.Temperature != nil || cur.WeatherCode != nil || cur.Wind != nil {
		t.Errorf("missing fields should stay nil, got %+v", cur)
	}
	if cur.IsDay {
		t.Error("missing is_day should coerce to false")
	}
	if cur.Description != weather.DescriptionUnavailable {
		t.Errorf("description = %q, want %q", cur.Description, weather.DescriptionUnavailable)
	}
	if cur.Date != "" {
		t.Errorf("date = %q, want empty with no daily rows", cur.Date)
	}
}

func TestForecastFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewForecastClient(server.Client(), server.URL)
	_, err := client.Fetch(context.Background(), weather.CityLocation{})

	var fetchErr *weather.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.Message != "Failed to load weather data." {
		t.Errorf("message = %q", fetchErr.Message)
	}
}
