package itinerary_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	ProvideMetadataService,
	ProvideItineraryParser,
	ProvideItineraryMerger,
	ProvideExtractController)

func ProvideMetadataService() services.MetadataServiceInterface {
	return services.NewMetadataService()
}

func ProvideItineraryParser() services.ItineraryParserInterface {
	return services.NewItineraryParser()
}

func ProvideItineraryMerger(parser services.ItineraryParserInterface) services.ItineraryMergerInterface {
	return services.NewItineraryMerger(parser)
}

func ProvideExtractController(
	metadataService services.MetadataServiceInterface,
	mergerService services.ItineraryMergerInterface,
) *controllers.ExtractController {
	return controllers.NewExtractController(metadataService, mergerService)
}
