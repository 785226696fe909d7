package catalog

// Catalog represents the destination catalog file.
// The app ships a built-in copy; wayfarerctl can validate external ones.
type Catalog struct {
	Version      int           `yaml:"version"`
	Destinations []Destination `yaml:"destinations"`
}

// Destination represents a single bookable destination.
type Destination struct {
	Slug      string  `yaml:"slug"`       // Stable identifier (e.g., "seoul")
	Name      string  `yaml:"name"`       // Display name (e.g., "Seoul")
	Country   string  `yaml:"country"`    // Country display name
	Lat       float64 `yaml:"lat"`        // Latitude in degrees
	Lng       float64 `yaml:"lng"`        // Longitude in degrees
	Nights    int     `yaml:"nights"`     // Suggested trip length
	PriceBand string  `yaml:"price_band"` // One of PriceBandDefinitions
}

// Stats summarizes a catalog for reporting.
type Stats struct {
	Destinations int            // Total destination count
	Countries    int            // Distinct country count
	ByPriceBand  map[string]int // Destination count per price band
}

// PriceBandDefinitions maps price band identifiers to human-readable names.
// This is used for display and validation purposes.
var PriceBandDefinitions = map[string]string{
	"budget": "Budget",
	"mid":    "Mid-range",
	"luxury": "Luxury",
}
