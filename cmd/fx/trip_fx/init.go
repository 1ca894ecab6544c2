package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	ProvideTripRepository,
	ProvideTripService,
	ProvideTripController)

func ProvideTripRepository(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func ProvideTripService(
	metadataService services.MetadataServiceInterface,
	mergerService services.ItineraryMergerInterface,
	geocodeService services.GeocodeServiceInterface,
	tripRepo repositories.TripRepository,
) services.TripServiceInterface {
	return services.NewTripService(metadataService, mergerService, geocodeService, tripRepo)
}

func ProvideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
