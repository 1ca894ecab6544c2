package db_models

import (
	"github.com/google/uuid"
)

// Trip is one extracted itinerary, persisted after place resolution.
type Trip struct {
	BaseModel
	Destination  string
	DurationDays int
	Budget       int
	Styles       string // comma-joined style tags

	Days []TripDay
}

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	DayNumber int
	Title     string
	Date      string

	Activities []TripActivity
}

type TripActivity struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"index"`

	Time             string // "<period> H:MM" as authored, not a timestamp
	Title            string
	Subtitle         string
	ActivityType     string
	Transport        string
	Duration         string
	Price            string
	PhotoRecommended bool

	Lat           float64
	Lng           float64
	Address       string
	GeoConfidence string
	GeoSource     string
}
