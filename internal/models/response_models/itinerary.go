package response_models

// ActivityType buckets an itinerary entry by what the traveler does there.
type ActivityType string

const (
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityMeal        ActivityType = "meal"
	ActivityShopping    ActivityType = "shopping"
	ActivityExperience  ActivityType = "activity"
)

type Activity struct {
	Time             string       `json:"time"`
	Title            string       `json:"title"`
	Subtitle         string       `json:"subtitle,omitempty"`
	Type             ActivityType `json:"type"`
	Transport        string       `json:"transport"`
	Duration         string       `json:"duration"`
	Price            string       `json:"price"`
	PhotoRecommended bool         `json:"photo_recommended"`

	// Filled in by the place resolver after parsing.
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
	Address       string  `json:"address,omitempty"`
	GeoConfidence string  `json:"geo_confidence,omitempty"`
	GeoSource     string  `json:"geo_source,omitempty"`
}

type DayItinerary struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

type TripMetadata struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      int      `json:"budget"`
	Styles      []string `json:"styles"`
}

type TripExtractResponse struct {
	Metadata TripMetadata   `json:"metadata"`
	Days     []DayItinerary `json:"days"`
}

type TripCreateResponse struct {
	TripID   string         `json:"trip_id"`
	Metadata TripMetadata   `json:"metadata"`
	Days     []DayItinerary `json:"days"`
}
