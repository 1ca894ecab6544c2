package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceInferenceClient asks an AI model for the coordinates of a named place.
// One best-effort call, not a conversation; an error means "no usable answer".
type PlaceInferenceClient interface {
	InferCoordinates(ctx context.Context, title, subtitle, destination string) (lat float64, lng float64, err error)
}

func buildPlacePrompt(title, subtitle, destination string) string {
	var b strings.Builder
	b.WriteString("You are a geocoding assistant. Return **JSON only**, no prose, no markdown.\n")
	b.WriteString(`Schema: {"lat": 0.0, "lng": 0.0}` + "\n\n")
	fmt.Fprintf(&b, "Place: %s\n", title)
	if subtitle != "" {
		fmt.Fprintf(&b, "Also known as: %s\n", subtitle)
	}
	fmt.Fprintf(&b, "City: %s\n", destination)
	b.WriteString("\nReturn the WGS84 coordinates of this place. JSON only.")
	return b.String()
}

// parseCoordinateJSON tolerates markdown fences around the JSON body.
func parseCoordinateJSON(raw string) (float64, float64, error) {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	raw = strings.TrimSpace(raw)

	var out struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return 0, 0, fmt.Errorf("coordinate json: %w", err)
	}
	if out.Lat < -90 || out.Lat > 90 || out.Lng < -180 || out.Lng > 180 {
		return 0, 0, fmt.Errorf("coordinates out of range: %f,%f", out.Lat, out.Lng)
	}
	if out.Lat == 0 && out.Lng == 0 {
		return 0, 0, fmt.Errorf("model returned null island")
	}
	return out.Lat, out.Lng, nil
}
