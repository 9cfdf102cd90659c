package weather

import (
	"context"
	"log"
	"sync"
)

// PreviewService loads current-conditions previews for the destination
// catalogue by running the resolve-then-fetch pipeline for every destination
// concurrently.
type PreviewService struct {
	resolver     Resolver
	fetcher      Fetcher
	destinations []Destination
}

// NewPreviewService creates a new PreviewService over the given catalogue.
func NewPreviewService(resolver Resolver, fetcher Fetcher, destinations []Destination) *PreviewService {
	return &PreviewService{
		resolver:     resolver,
		fetcher:      fetcher,
		destinations: destinations,
	}
}

// Destinations returns the catalogue the service iterates.
func (s *PreviewService) Destinations() []Destination {
	return s.destinations
}

// LoadPreviews fans out over the catalogue and joins once every destination
// has settled. A failure in one destination's pipeline is logged and yields
// no entry for that destination only; siblings are unaffected. Keys of the
// returned map are always drawn from the catalogue's names.
//
// A cancelled context yields nil so callers never commit a partial result.
func (s *PreviewService) LoadPreviews(ctx context.Context) PreviewMap {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		previews = make(PreviewMap, len(s.destinations))
	)

	for _, dest := range s.destinations {
		dest := dest
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Within one destination, resolve must finish before fetch;
			// across destinations everything runs independently.
			loc, err := s.resolver.Resolve(ctx, dest.Name)
			if err != nil {
				log.Printf("preview: resolve failed for %s: %v", dest.Name, err)
				return
			}

			snapshot, err := s.fetcher.Fetch(ctx, loc)
			if err != nil {
				log.Printf("preview: fetch failed for %s: %v", dest.Name, err)
				return
			}
			if snapshot.Current == nil {
				log.Printf("preview: no current conditions for %s", dest.Name)
				return
			}

			mu.Lock()
			previews[dest.Name] = snapshot.Current
			mu.Unlock()
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return previews
}
