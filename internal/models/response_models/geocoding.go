package response_models

// GeoConfidence grades how trustworthy a resolved coordinate is.
type GeoConfidence string

const (
	ConfidenceHigh   GeoConfidence = "high"
	ConfidenceMedium GeoConfidence = "medium"
	ConfidenceLow    GeoConfidence = "low"
)

// GeoSource names which strategy produced a coordinate.
type GeoSource string

const (
	SourceGeocoder GeoSource = "external-geocoder"
	SourceAI       GeoSource = "ai-inference"
	SourceFallback GeoSource = "static-fallback"
)

type GeocodingResult struct {
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Address    string        `json:"address,omitempty"`
	Confidence GeoConfidence `json:"confidence"`
	Source     GeoSource     `json:"source"`
}
