package memcache

import (
	"testing"

	"tripmate/internal/models/response_models"
)

func TestGeocodeCacheSetGet(t *testing.T) {
	cache := NewGeocodeResults()
	key := PlaceKey{Title: "센소지", Subtitle: "아사쿠사", Destination: "도쿄"}

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache should miss")
	}

	want := response_models.GeocodingResult{
		Lat:        35.7148,
		Lng:        139.7967,
		Confidence: response_models.ConfidenceHigh,
		Source:     response_models.SourceGeocoder,
	}
	cache.Set(key, want)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected len 1, got %d", cache.Len())
	}
}

func TestGeocodeCacheKeyIsFullTriple(t *testing.T) {
	cache := NewGeocodeResults()
	cache.Set(PlaceKey{Title: "센소지", Destination: "도쿄"}, response_models.GeocodingResult{Lat: 1})

	if _, ok := cache.Get(PlaceKey{Title: "센소지", Destination: "오사카"}); ok {
		t.Fatal("different destination must not share an entry")
	}
	if _, ok := cache.Get(PlaceKey{Title: "센소지", Subtitle: "아사쿠사", Destination: "도쿄"}); ok {
		t.Fatal("different subtitle must not share an entry")
	}
}

func TestGeocodeCacheOverwrite(t *testing.T) {
	cache := NewGeocodeResults()
	key := PlaceKey{Title: "도쿄타워", Destination: "도쿄"}

	cache.Set(key, response_models.GeocodingResult{Lat: 1})
	cache.Set(key, response_models.GeocodingResult{Lat: 2})

	got, _ := cache.Get(key)
	if got.Lat != 2 {
		t.Fatalf("expected latest value, got %+v", got)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected len 1 after overwrite, got %d", cache.Len())
	}
}
