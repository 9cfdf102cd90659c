package dashboard

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/nomadweather/weather-dashboard/internal/store"
	"github.com/nomadweather/weather-dashboard/internal/weather"
)

// FallbackErrorMessage is shown when a failure carries no message of its own.
const FallbackErrorMessage = "Something went wrong while fetching weather."

// State is the complete renderable dashboard state. Rendering itself lives
// on the other side of this boundary.
type State struct {
	City         *weather.CityLocation   `json:"city"`
	Weather      weather.WeatherSnapshot `json:"weather"`
	Previews     weather.PreviewMap      `json:"previews"`
	IsLoading    bool                    `json:"isLoading"`
	ErrorMessage string                  `json:"errorMessage"`
	Theme        store.Theme             `json:"theme"`
}

// Dashboard owns the primary-city search lifecycle and all mutable dashboard
// state. Mutations funnel through a small set of entry points; reads go
// through Snapshot.
type Dashboard struct {
	resolver weather.Resolver
	fetcher  weather.Fetcher
	previews *weather.PreviewService
	prefs    *store.PrefsStore

	mu         sync.RWMutex
	city       *weather.CityLocation
	snapshot   weather.WeatherSnapshot
	previewMap weather.PreviewMap
	loading    bool
	errMsg     string
	theme      store.Theme

	// searchGen identifies the newest search; only that search may commit
	// its result. cancelSearch aborts the superseded in-flight attempt.
	searchGen    uint64
	cancelSearch context.CancelFunc
}

// New creates a Dashboard. The initial theme comes from the preference store,
// falling back to defaultTheme (the system-level preference signal).
func New(resolver weather.Resolver, fetcher weather.Fetcher, previews *weather.PreviewService, prefs *store.PrefsStore, defaultTheme store.Theme) *Dashboard {
	if !defaultTheme.Valid() {
		defaultTheme = store.ThemeLight
	}
	return &Dashboard{
		resolver:   resolver,
		fetcher:    fetcher,
		previews:   previews,
		prefs:      prefs,
		previewMap: make(weather.PreviewMap),
		theme:      prefs.LoadTheme(defaultTheme),
	}
}

// Snapshot returns a copy of the renderable state. The preview map is copied
// so callers never observe a concurrent refresh mid-write.
func (d *Dashboard) Snapshot() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	previews := make(weather.PreviewMap, len(d.previewMap))
	for name, preview := range d.previewMap {
		previews[name] = preview
	}

	return State{
		City:         d.city,
		Weather:      d.snapshot,
		Previews:     previews,
		IsLoading:    d.loading,
		ErrorMessage: d.errMsg,
		Theme:        d.theme,
	}
}

// Search runs the resolve-then-fetch pipeline for query and commits the
// resulting city and snapshot together. A blank query is a no-op. Starting a
// newer search cancels the in-flight one and bars its late result from ever
// being committed, so the displayed state always belongs to the latest query.
//
// On failure the previous city and weather are left untouched; only the
// error banner changes.
func (d *Dashboard) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	d.mu.Lock()
	d.searchGen++
	gen := d.searchGen
	if d.cancelSearch != nil {
		d.cancelSearch()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	d.cancelSearch = cancel
	d.loading = true
	d.errMsg = ""
	d.mu.Unlock()

	// Release this search's context once it settles; a superseding search
	// will already have cancelled it by then.
	defer cancel()

	city, err := d.resolver.Resolve(searchCtx, query)
	var snapshot weather.WeatherSnapshot
	if err == nil {
		snapshot, err = d.fetcher.Fetch(searchCtx, city)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.searchGen || searchCtx.Err() != nil {
		// Superseded by a newer search; drop this result entirely.
		return
	}

	d.loading = false
	if err != nil {
		log.Printf("dashboard: search %q failed: %v", query, err)
		msg := err.Error()
		if msg == "" {
			msg = FallbackErrorMessage
		}
		d.errMsg = msg
		return
	}

	// City and snapshot replace together so current.date stays aligned with
	// the forecast it was derived from.
	d.city = &city
	d.snapshot = snapshot
}

// SelectDestination is the preview-card click path: identical to typing the
// destination's name and searching.
func (d *Dashboard) SelectDestination(ctx context.Context, name string) {
	d.Search(ctx, name)
}

// Bootstrap performs the initial load: an implicit search for the default
// city and the first preview pass, concurrently. Failures here are logged
// and never surface in the error banner.
func (d *Dashboard) Bootstrap(ctx context.Context, defaultCity string) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		d.bootstrapCity(ctx, defaultCity)
	}()
	go func() {
		defer wg.Done()
		d.RefreshPreviews(ctx)
	}()

	wg.Wait()
}

func (d *Dashboard) bootstrapCity(ctx context.Context, defaultCity string) {
	d.mu.RLock()
	gen := d.searchGen
	d.mu.RUnlock()

	city, err := d.resolver.Resolve(ctx, defaultCity)
	if err != nil {
		log.Printf("dashboard: bootstrap resolve failed for %s: %v", defaultCity, err)
		return
	}
	snapshot, err := d.fetcher.Fetch(ctx, city)
	if err != nil {
		log.Printf("dashboard: bootstrap fetch failed for %s: %v", defaultCity, err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// A user search that started meanwhile wins over the bootstrap result.
	if gen != d.searchGen || ctx.Err() != nil {
		return
	}
	d.city = &city
	d.snapshot = snapshot
}

// RefreshPreviews reloads the preview map from the aggregator. A cancelled
// or failed aggregation leaves the existing previews in place.
func (d *Dashboard) RefreshPreviews(ctx context.Context) {
	previews := d.previews.LoadPreviews(ctx)
	if previews == nil || ctx.Err() != nil {
		return
	}

	d.mu.Lock()
	d.previewMap = previews
	d.mu.Unlock()
}

// ToggleTheme flips between light and dark, persists the choice, and returns
// the new value. Persistence failures keep the in-memory flip and are only
// logged.
func (d *Dashboard) ToggleTheme() store.Theme {
	d.mu.Lock()
	d.theme = d.theme.Toggle()
	theme := d.theme
	d.mu.Unlock()

	if err := d.prefs.SaveTheme(theme); err != nil {
		log.Printf("dashboard: failed to persist theme: %v", err)
	}
	return theme
}

// DismissError clears the error banner without retrying anything.
func (d *Dashboard) DismissError() {
	d.mu.Lock()
	d.errMsg = ""
	d.mu.Unlock()
}

// Destinations exposes the catalogue for the API layer.
func (d *Dashboard) Destinations() []weather.Destination {
	return d.previews.Destinations()
}
