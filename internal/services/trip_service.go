package services

import (
	"context"
	"log"
	"strings"

	dbm "tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TripServiceInterface interface {
	ExtractTrip(messages []request_models.ChatMessage) response_models.TripExtractResponse
	BuildTripFromConversation(ctx context.Context, messages []request_models.ChatMessage) (*response_models.TripCreateResponse, error)
	GetTripDetails(ctx context.Context, tripID string) (*dbm.Trip, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error)
}

type TripService struct {
	metadata MetadataServiceInterface
	merger   ItineraryMergerInterface
	geocode  GeocodeServiceInterface
	tripRepo repositories.TripRepository
}

func NewTripService(
	metadata MetadataServiceInterface,
	merger ItineraryMergerInterface,
	geocode GeocodeServiceInterface,
	tripRepo repositories.TripRepository,
) TripServiceInterface {
	return &TripService{
		metadata: metadata,
		merger:   merger,
		geocode:  geocode,
		tripRepo: tripRepo,
	}
}

// ExtractTrip runs metadata extraction and itinerary merging over the
// transcript. Pure computation; always returns a renderable result.
func (s *TripService) ExtractTrip(messages []request_models.ChatMessage) response_models.TripExtractResponse {
	meta := s.metadata.ExtractTripMetadata(conversationText(messages))
	days := s.merger.MergeItineraries(messages, meta.Duration)
	return response_models.TripExtractResponse{Metadata: meta, Days: days}
}

// BuildTripFromConversation is the full flow: extract, merge, resolve every
// activity to a coordinate, persist, and hand back the enriched itinerary.
func (s *TripService) BuildTripFromConversation(ctx context.Context, messages []request_models.ChatMessage) (*response_models.TripCreateResponse, error) {
	extracted := s.ExtractTrip(messages)

	var queries []request_models.PlaceQuery
	for _, day := range extracted.Days {
		for _, act := range day.Activities {
			queries = append(queries, request_models.PlaceQuery{Title: act.Title, Subtitle: act.Subtitle})
		}
	}

	results := s.geocode.ResolveAll(ctx, queries, extracted.Metadata.Destination)

	i := 0
	for di := range extracted.Days {
		for ai := range extracted.Days[di].Activities {
			act := &extracted.Days[di].Activities[ai]
			act.Lat = results[i].Lat
			act.Lng = results[i].Lng
			act.Address = results[i].Address
			act.GeoConfidence = string(results[i].Confidence)
			act.GeoSource = string(results[i].Source)
			i++
		}
	}

	tripID, err := s.tripRepo.SaveTrip(ctx, extracted.Metadata, extracted.Days)
	if err != nil {
		log.Printf("failed to persist trip for %q: %v", extracted.Metadata.Destination, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripCreateResponse{
		TripID:   tripID.String(),
		Metadata: extracted.Metadata,
		Days:     extracted.Days,
	}, nil
}

func (s *TripService) GetTripDetails(ctx context.Context, tripID string) (*dbm.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, page int, pageSize int) ([]dbm.Trip, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	trips, err := s.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func conversationText(messages []request_models.ChatMessage) string {
	var parts []string
	for _, msg := range messages {
		parts = append(parts, msg.Parts...)
	}
	return strings.Join(parts, "\n")
}
