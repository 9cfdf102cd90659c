package weather

import "context"

// Resolver turns a free-text city query into coordinates. Implementations
// issue one lookup per call; there is no caching layer in between.
type Resolver interface {
	Resolve(ctx context.Context, query string) (CityLocation, error)
}

// Fetcher retrieves and normalizes current conditions plus the daily
// forecast for a resolved location.
type Fetcher interface {
	Fetch(ctx context.Context, loc CityLocation) (WeatherSnapshot, error)
}
