package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// GardenLocation is a coordinate pair the prefetch scheduler keeps warm.
type GardenLocation struct {
	Lat float64
	Lon float64
}

type AppConfig struct {
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// CacheTTL controls how long upstream fetch results stay fresh.
	CacheTTL time.Duration

	// PrefetchInterval controls how often the scheduler refreshes advisories
	// for the configured garden locations.
	PrefetchInterval time.Duration

	// HTTPTimeout applies to outbound provider calls.
	HTTPTimeout time.Duration

	// Locations to prefetch.
	Locations []GardenLocation

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	ttlStr := getenvDefault("CACHE_TTL", "30m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	intervalStr := getenvDefault("PREFETCH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PREFETCH_INTERVAL: %w", err)
	}
	cfg.PrefetchInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	locs, err := loadGardenLocations()
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// loadGardenLocations parses GARDEN_LOCATIONS, a semicolon-separated list of
// "lat,lon" pairs. An empty variable disables prefetching.
func loadGardenLocations() ([]GardenLocation, error) {
	raw := strings.TrimSpace(os.Getenv("GARDEN_LOCATIONS"))
	if raw == "" {
		return nil, nil
	}

	var locs []GardenLocation
	for _, pair := range strings.Split(raw, ";") {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid GARDEN_LOCATIONS entry %q; expected lat,lon", pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in GARDEN_LOCATIONS entry %q: %w", pair, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in GARDEN_LOCATIONS entry %q: %w", pair, err)
		}
		locs = append(locs, GardenLocation{Lat: lat, Lon: lon})
	}

	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
