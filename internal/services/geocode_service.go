package services

import (
	"context"
	"log"
	"strings"
	"time"

	"tripmate/internal/assets"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

// DefaultBatchDelay paces sequential geocoder calls (Nominatim politeness).
const DefaultBatchDelay = 300 * time.Millisecond

type GeocodeServiceInterface interface {
	Resolve(ctx context.Context, title, subtitle, destination string) response_models.GeocodingResult
	ResolveAll(ctx context.Context, places []request_models.PlaceQuery, destination string) []response_models.GeocodingResult
}

type GeocodeService struct {
	geocoder   GeocoderClient
	ai         utils.PlaceInferenceClient // nil when no provider is configured
	cache      memcache.GeocodeCache
	centers    map[string]assets.CityCenter
	batchDelay time.Duration
}

func NewGeocodeService(
	geocoder GeocoderClient,
	ai utils.PlaceInferenceClient,
	cache memcache.GeocodeCache,
	centers map[string]assets.CityCenter,
	batchDelay time.Duration,
) GeocodeServiceInterface {
	if batchDelay <= 0 {
		batchDelay = DefaultBatchDelay
	}
	return &GeocodeService{
		geocoder:   geocoder,
		ai:         ai,
		cache:      cache,
		centers:    centers,
		batchDelay: batchDelay,
	}
}

// resolveStrategy is one step of the pipeline; nil means "inconclusive, try
// the next one". The last strategy in the list always yields a result.
type resolveStrategy struct {
	name string
	run  func(ctx context.Context) *response_models.GeocodingResult
}

// Resolve walks the strategy list in priority order and returns the first
// acceptable result. It never fails: the static fallback closes the chain.
func (s *GeocodeService) Resolve(ctx context.Context, title, subtitle, destination string) response_models.GeocodingResult {
	key := memcache.PlaceKey{Title: title, Subtitle: subtitle, Destination: destination}
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	strategies := []resolveStrategy{
		{
			name: "geocode subtitle+destination",
			run: func(ctx context.Context) *response_models.GeocodingResult {
				if subtitle == "" {
					return nil
				}
				return s.geocodeAccept(ctx, subtitle+", "+destination, highOnly)
			},
		},
		{
			name: "geocode subtitle",
			run: func(ctx context.Context) *response_models.GeocodingResult {
				if subtitle == "" {
					return nil
				}
				return s.geocodeAccept(ctx, subtitle, highOnly)
			},
		},
		{
			name: "geocode title+destination",
			run: func(ctx context.Context) *response_models.GeocodingResult {
				return s.geocodeAccept(ctx, title+", "+destination, highOrMedium)
			},
		},
		{
			name: "ai inference",
			run: func(ctx context.Context) *response_models.GeocodingResult {
				return s.inferWithAI(ctx, title, subtitle, destination)
			},
		},
		{
			name: "static city center",
			run: func(ctx context.Context) *response_models.GeocodingResult {
				return s.cityCenterFallback(destination)
			},
		},
	}

	var result response_models.GeocodingResult
	for _, strategy := range strategies {
		if r := strategy.run(ctx); r != nil {
			result = *r
			break
		}
		log.Printf("geocode: %q inconclusive after %s", title, strategy.name)
	}

	s.cache.Set(key, result)
	return result
}

// ResolveAll resolves places one by one, in input order, pacing calls with a
// fixed delay. Every input index has an output; Resolve cannot fail.
func (s *GeocodeService) ResolveAll(ctx context.Context, places []request_models.PlaceQuery, destination string) []response_models.GeocodingResult {
	results := make([]response_models.GeocodingResult, 0, len(places))
	for i, place := range places {
		if i > 0 {
			time.Sleep(s.batchDelay)
		}
		results = append(results, s.Resolve(ctx, place.Title, place.Subtitle, destination))
	}
	return results
}

func highOnly(c response_models.GeoConfidence) bool {
	return c == response_models.ConfidenceHigh
}

func highOrMedium(c response_models.GeoConfidence) bool {
	return c == response_models.ConfidenceHigh || c == response_models.ConfidenceMedium
}

// geocodeAccept queries the external geocoder and keeps the hit only when its
// graded confidence passes the step's bar. Errors and empty responses both
// read as "no result from this strategy".
func (s *GeocodeService) geocodeAccept(ctx context.Context, query string, accept func(response_models.GeoConfidence) bool) *response_models.GeocodingResult {
	hit, err := s.geocoder.Search(ctx, query)
	if err != nil {
		log.Printf("geocode: query %q failed: %v", query, err)
		return nil
	}
	if hit == nil {
		return nil
	}

	confidence := gradeConfidence(hit.Types)
	if !accept(confidence) {
		return nil
	}
	return &response_models.GeocodingResult{
		Lat:        hit.Lat,
		Lng:        hit.Lng,
		Address:    hit.Address,
		Confidence: confidence,
		Source:     response_models.SourceGeocoder,
	}
}

func (s *GeocodeService) inferWithAI(ctx context.Context, title, subtitle, destination string) *response_models.GeocodingResult {
	if s.ai == nil {
		return nil
	}
	lat, lng, err := s.ai.InferCoordinates(ctx, title, subtitle, destination)
	if err != nil {
		log.Printf("geocode: ai inference for %q failed: %v", title, err)
		return nil
	}
	return &response_models.GeocodingResult{
		Lat:        lat,
		Lng:        lng,
		Confidence: response_models.ConfidenceLow,
		Source:     response_models.SourceAI,
	}
}

func (s *GeocodeService) cityCenterFallback(destination string) *response_models.GeocodingResult {
	center, ok := s.centers[destination]
	if !ok {
		center, ok = s.centers[strings.ToLower(destination)]
	}
	if !ok {
		log.Printf("geocode: no city center for %q, using origin", destination)
	}
	return &response_models.GeocodingResult{
		Lat:        center.Lat,
		Lng:        center.Lng,
		Confidence: response_models.ConfidenceLow,
		Source:     response_models.SourceFallback,
	}
}

var highPlaceTypes = map[string]bool{
	"tourism":            true,
	"attraction":         true,
	"tourist_attraction": true,
	"point_of_interest":  true,
	"establishment":      true,
	"amenity":            true,
	"restaurant":         true,
	"shop":               true,
	"store":              true,
	"leisure":            true,
	"historic":           true,
}

var mediumPlaceTypes = map[string]bool{
	"highway":       true,
	"route":         true,
	"railway":       true,
	"suburb":        true,
	"sublocality":   true,
	"neighbourhood": true,
	"neighborhood":  true,
	"quarter":       true,
}

// gradeConfidence maps the geocoder's place-type tags onto the three-level
// grade. Tags may be bare classes ("tourism") or class:type pairs
// ("place:suburb"); the strongest bucket across all tags wins.
func gradeConfidence(types []string) response_models.GeoConfidence {
	medium := false
	for _, tag := range types {
		for _, part := range strings.Split(tag, ":") {
			if highPlaceTypes[part] {
				return response_models.ConfidenceHigh
			}
			if mediumPlaceTypes[part] {
				medium = true
			}
		}
	}
	if medium {
		return response_models.ConfidenceMedium
	}
	return response_models.ConfidenceLow
}
