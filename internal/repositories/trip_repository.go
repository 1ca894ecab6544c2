// internal/repositories/trip_repository.go
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
	resp "tripmate/internal/models/response_models"
)

type TripRepository interface {
	SaveTrip(ctx context.Context, meta resp.TripMetadata, days []resp.DayItinerary) (uuid.UUID, error)
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) SaveTrip(ctx context.Context, meta resp.TripMetadata, days []resp.DayItinerary) (uuid.UUID, error) {
	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trip := dbm.Trip{
			Destination:  meta.Destination,
			DurationDays: meta.Duration,
			Budget:       meta.Budget,
			Styles:       strings.Join(meta.Styles, ","),
		}
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}
		outID = trip.ID

		for _, d := range days {
			day := dbm.TripDay{
				TripID:    trip.ID,
				DayNumber: d.Day,
				Title:     d.Title,
				Date:      d.Date,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}

			acts := make([]dbm.TripActivity, 0, len(d.Activities))
			for _, a := range d.Activities {
				acts = append(acts, dbm.TripActivity{
					TripDayID:        day.ID,
					Time:             a.Time,
					Title:            a.Title,
					Subtitle:         a.Subtitle,
					ActivityType:     string(a.Type),
					Transport:        a.Transport,
					Duration:         a.Duration,
					Price:            a.Price,
					PhotoRecommended: a.PhotoRecommended,
					Lat:              a.Lat,
					Lng:              a.Lng,
					Address:          a.Address,
					GeoConfidence:    a.GeoConfidence,
					GeoSource:        a.GeoSource,
				})
			}
			if len(acts) > 0 {
				if err := tx.Create(&acts).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	return outID, err
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_days.day_number ASC")
		}).
		Preload("Days.Activities").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
