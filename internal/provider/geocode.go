package provider

import (
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/Hexrox/garden-advisor/internal/advisory"
)

// Geocoder resolves a city name to coordinates through the Google Geocoding
// API, letting callers ask for garden advice by place name.
type Geocoder struct {
	apiKey string
}

func NewGeocoder(apiKey string) *Geocoder {
	geocoder.ApiKey = apiKey
	return &Geocoder{apiKey: apiKey}
}

// Resolve returns the coordinates for a city (and optional country).
func (g *Geocoder) Resolve(city, country string) (float64, float64, error) {
	if g.apiKey == "" {
		return 0, 0, advisory.ErrNotConfigured
	}

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: geocoding %q: %v", advisory.ErrUpstreamUnavailable, city, err)
	}
	return loc.Latitude, loc.Longitude, nil
}
