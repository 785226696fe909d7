// Package catalog loads and validates the Wayfarer destination catalog.
//
// The catalog is a versioned YAML document listing every bookable
// destination with its coordinates and pricing metadata. A default copy
// is embedded in the binary; wayfarerctl can load and validate external
// catalog files before they ship.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the catalog schema version this build understands.
const CurrentVersion = 1

// Parse parses and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if c.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported catalog version: %d (expected %d)", c.Version, CurrentVersion)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads and parses a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Validate checks every destination for well-formedness: unique non-empty
// slugs, display names, coordinates within range, and known price bands.
func (c *Catalog) Validate() error {
	if len(c.Destinations) == 0 {
		return fmt.Errorf("catalog has no destinations")
	}

	seen := make(map[string]bool, len(c.Destinations))
	for i, d := range c.Destinations {
		if d.Slug == "" {
			return fmt.Errorf("destination %d: missing slug", i)
		}
		if seen[d.Slug] {
			return fmt.Errorf("destination %d: duplicate slug %q", i, d.Slug)
		}
		seen[d.Slug] = true

		if d.Name == "" {
			return fmt.Errorf("destination %q: missing name", d.Slug)
		}
		if d.Country == "" {
			return fmt.Errorf("destination %q: missing country", d.Slug)
		}
		if d.Lat < -90 || d.Lat > 90 {
			return fmt.Errorf("destination %q: latitude %v out of range", d.Slug, d.Lat)
		}
		if d.Lng < -180 || d.Lng > 180 {
			return fmt.Errorf("destination %q: longitude %v out of range", d.Slug, d.Lng)
		}
		if d.Nights < 1 {
			return fmt.Errorf("destination %q: nights must be at least 1", d.Slug)
		}
		if _, ok := PriceBandDefinitions[d.PriceBand]; !ok {
			return fmt.Errorf("destination %q: unknown price band %q", d.Slug, d.PriceBand)
		}
	}

	return nil
}

// FindBySlug returns the destination with the given slug.
// Returns nil if no destination matches.
func (c *Catalog) FindBySlug(slug string) *Destination {
	for i := range c.Destinations {
		if c.Destinations[i].Slug == slug {
			return &c.Destinations[i]
		}
	}
	return nil
}

// Filter returns destinations whose name or country contains the query,
// case-insensitively. An empty query returns every destination.
func (c *Catalog) Filter(query string) []Destination {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Destinations
	}

	var matched []Destination
	for _, d := range c.Destinations {
		if strings.Contains(strings.ToLower(d.Name), query) ||
			strings.Contains(strings.ToLower(d.Country), query) {
			matched = append(matched, d)
		}
	}
	return matched
}

// ComputeStats summarizes the catalog.
func (c *Catalog) ComputeStats() Stats {
	countries := make(map[string]bool)
	byBand := make(map[string]int)
	for _, d := range c.Destinations {
		countries[d.Country] = true
		byBand[d.PriceBand]++
	}
	return Stats{
		Destinations: len(c.Destinations),
		Countries:    len(countries),
		ByPriceBand:  byBand,
	}
}
