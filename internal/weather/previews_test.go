package weather

import (
	"context"
	"errors"
	"testing"
)

type stubResolver struct {
	resolve func(ctx context.Context, query string) (CityLocation, error)
}

func (s *stubResolver) Resolve(ctx context.Context, query string) (CityLocation, error) {
	return s.resolve(ctx, query)
}

type stubFetcher struct {
	fetch func(ctx context.Context, loc CityLocation) (WeatherSnapshot, error)
}

func (s *stubFetcher) Fetch(ctx context.Context, loc CityLocation) (WeatherSnapshot, error) {
	return s.fetch(ctx, loc)
}

func snapshotFor(city string) WeatherSnapshot {
	temp := 18.4
	code := 2
	return WeatherSnapshot{
		Current: &CurrentConditions{
			Date:        "2024-05-01",
			Temperature: &temp,
			WeatherCode: &code,
			Description: DescribeWeatherCode(&code),
		},
		Daily: &DailyForecast{Time: []string{"2024-05-01"}},
	}
}

var testDestinations = []Destination{
	{Name: "Paris", Country: "France"},
	{Name: "Tokyo", Country: "Japan"},
	{Name: "Sydney", Country: "Australia"},
}

// TestLoadPreviewsKeysMatchCatalogue checks that after the aggregation
// settles, the map holds entries only for catalogue names.
func TestLoadPreviewsKeysMatchCatalogue(t *testing.T) {
	resolver := &stubResolver{resolve: func(_ context.Context, query string) (CityLocation, error) {
		return CityLocation{Name: query}, nil
	}}
	fetcher := &stubFetcher{fetch: func(_ context.Context, loc CityLocation) (WeatherSnapshot, error) {
		return snapshotFor(loc.Name), nil
	}}

	svc := NewPreviewService(resolver, fetcher, testDestinations)
	previews := svc.LoadPreviews(context.Background())

	if len(previews) != len(testDestinations) {
		t.Fatalf("expected %d previews, got %d", len(testDestinations), len(previews))
	}
	known := make(map[string]bool)
	for _, dest := range testDestinations {
		known[dest.Name] = true
		if previews[dest.Name] == nil {
			t.Errorf("missing preview for %s", dest.Name)
		}
	}
	for name := range previews {
		if !known[name] {
			t.Errorf("preview map holds key %q absent from the catalogue", name)
		}
	}
}

// TestLoadPreviewsFailureIsolation makes one destination's resolve fail and
// checks that its siblings still settle with previews.
func TestLoadPreviewsFailureIsolation(t *testing.T) {
	resolver := &stubResolver{resolve: func(_ context.Context, query string) (CityLocation, error) {
		if query == "Tokyo" {
			return CityLocation{}, errors.New("boom")
		}
		return CityLocation{Name: query}, nil
	}}
	fetcher := &stubFetcher{fetch: func(_ context.Context, loc CityLocation) (WeatherSnapshot, error) {
		return snapshotFor(loc.Name), nil
	}}

	svc := NewPreviewService(resolver, fetcher, testDestinations)
	previews := svc.LoadPreviews(context.Background())

	if _, ok := previews["Tokyo"]; ok {
		t.Error("failed destination should have no entry")
	}
	if previews["Paris"] == nil || previews["Sydney"] == nil {
		t.Errorf("sibling previews should survive one failure, got %v", previews)
	}
}

// TestLoadPreviewsFetchFailureIsolation does the same for the fetch step.
func TestLoadPreviewsFetchFailureIsolation(t *testing.T) {
	resolver := &stubResolver{resolve: func(_ context.Context, query string) (CityLocation, error) {
		return CityLocation{Name: query}, nil
	}}
	fetcher := &stubFetcher{fetch: func(_ context.Context, loc CityLocation) (WeatherSnapshot, error) {
		if loc.Name == "Sydney" {
			return WeatherSnapshot{}, NewFetchError(MsgWeatherFailed, nil)
		}
		return snapshotFor(loc.Name), nil
	}}

	svc := NewPreviewService(resolver, fetcher, testDestinations)
	previews := svc.LoadPreviews(context.Background())

	if _, ok := previews["Sydney"]; ok {
		t.Error("failed destination should have no entry")
	}
	if len(previews) != 2 {
		t.Fatalf("expected 2 surviving previews, got %d", len(previews))
	}
}

// TestLoadPreviewsCancelled checks that a cancelled aggregation yields nil so
// callers never commit partial state.
func TestLoadPreviewsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	resolver := &stubResolver{resolve: func(ctx context.Context, query string) (CityLocation, error) {
		cancel()
		<-ctx.Done()
		return CityLocation{}, ctx.Err()
	}}
	fetcher := &stubFetcher{fetch: func(_ context.Context, loc CityLocation) (WeatherSnapshot, error) {
		return snapshotFor(loc.Name), nil
	}}

	svc := NewPreviewService(resolver, fetcher, testDestinations)
	if previews := svc.LoadPreviews(ctx); previews != nil {
		t.Fatalf("cancelled aggregation should return nil, got %v", previews)
	}
}
