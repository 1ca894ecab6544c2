// pkg/memcache/geocode_cache.go
package memcache

import (
	"sync"

	"tripmate/internal/models/response_models"
)

// PlaceKey identifies one resolution request. Lookups are exact-match only;
// near-identical titles are distinct entries on purpose.
type PlaceKey struct {
	Title       string
	Subtitle    string
	Destination string
}

type GeocodeCache interface {
	Get(k PlaceKey) (response_models.GeocodingResult, bool)
	Set(k PlaceKey, v response_models.GeocodingResult)
	Len() int
}

// GeocodeResults lives for the process lifetime; entries are never evicted.
type GeocodeResults struct {
	mu   sync.RWMutex
	data map[PlaceKey]response_models.GeocodingResult
}

func NewGeocodeResults() *GeocodeResults {
	return &GeocodeResults{
		data: make(map[PlaceKey]response_models.GeocodingResult),
	}
}

func (s *GeocodeResults) Get(k PlaceKey) (response_models.GeocodingResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[k]
	return v, ok
}

func (s *GeocodeResults) Set(k PlaceKey, v response_models.GeocodingResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[k] = v
}

func (s *GeocodeResults) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
