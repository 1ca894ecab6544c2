package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed city_centers.yaml
var cityCentersYAML []byte

type CityCenter struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// LoadCityCenters parses the embedded fallback table. The file ships with the
// binary, so a parse failure is a build defect, not a runtime condition.
func LoadCityCenters() (map[string]CityCenter, error) {
	centers := make(map[string]CityCenter)
	if err := yaml.Unmarshal(cityCentersYAML, &centers); err != nil {
		return nil, fmt.Errorf("city centers asset: %w", err)
	}
	return centers, nil
}
