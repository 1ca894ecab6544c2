// cmd/fx/geocode_fx/module.go
package geocode_fx

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/assets"
	"tripmate/internal/services"
	"tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvideGeocoderClient,
	ProvidePlaceAIClient,
	ProvideGeocodeCache,
	ProvideGeocodeService,
	ProvideGeocodeController)

func ProvideGeocoderClient() services.GeocoderClient {
	return services.NewNominatimClient()
}

// ProvidePlaceAIClient selects the coordinate-inference provider from the
// environment. "none" (or an unset key) disables the AI strategy entirely;
// the resolver then falls straight through to the static table.
func ProvidePlaceAIClient() (utils.PlaceInferenceClient, error) {
	provider := getEnvWithDefault("PLACE_AI_PROVIDER", "none")

	switch strings.ToLower(provider) {
	case "none":
		return nil, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Println("OPENAI_API_KEY is empty, disabling AI place inference")
			return nil, nil
		}
		return utils.NewOpenAIPlaceClient(apiKey, os.Getenv("OPENAI_MODEL")), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Println("GEMINI_API_KEY is empty, disabling AI place inference")
			return nil, nil
		}
		client, err := utils.NewGeminiPlaceClient(apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported place AI provider: %s. Use 'gemini', 'openai' or 'none'", provider)
	}
}

func ProvideGeocodeCache() memcache.GeocodeCache {
	return memcache.NewGeocodeResults()
}

func ProvideGeocodeService(
	geocoder services.GeocoderClient,
	ai utils.PlaceInferenceClient,
	cache memcache.GeocodeCache,
) (services.GeocodeServiceInterface, error) {
	centers, err := assets.LoadCityCenters()
	if err != nil {
		return nil, err
	}

	delay := services.DefaultBatchDelay
	if ms := os.Getenv("GEOCODE_BATCH_DELAY_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			delay = time.Duration(n) * time.Millisecond
		}
	}

	return services.NewGeocodeService(geocoder, ai, cache, centers, delay), nil
}

func ProvideGeocodeController(geocodeService services.GeocodeServiceInterface) *controllers.GeocodeController {
	return controllers.NewGeocodeController(geocodeService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
