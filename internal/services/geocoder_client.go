package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// GeocodeHit is the best match the external geocoder returned for a query.
// Types carries the place-type tags used for confidence grading.
type GeocodeHit struct {
	Lat     float64
	Lng     float64
	Address string
	Types   []string
}

// GeocoderClient is the contract the resolver needs from the external
// geocoder. A (nil, nil) return means "no match", which is a normal outcome.
type GeocoderClient interface {
	Search(ctx context.Context, query string) (*GeocodeHit, error)
}

// NominatimClient queries the OpenStreetMap Nominatim search API.
type NominatimClient struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string // Nominatim rejects requests without one
}

func NewNominatimClient() *NominatimClient {
	ua := os.Getenv("NOMINATIM_USER_AGENT")
	if ua == "" {
		ua = "tripmate/1.0"
	}
	return &NominatimClient{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		BaseURL:   "https://nominatim.openstreetmap.org",
		UserAgent: ua,
	}
}

func (c *NominatimClient) Search(ctx context.Context, query string) (*GeocodeHit, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
		Class       string `json:"class"`
		Type        string `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	best := payload[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim lat parse: %w", err)
	}
	lng, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim lon parse: %w", err)
	}

	return &GeocodeHit{
		Lat:     lat,
		Lng:     lng,
		Address: best.DisplayName,
		Types:   []string{best.Class, best.Class + ":" + best.Type},
	}, nil
}
