package advisory

import (
	"context"
	"fmt"

	"github.com/Hexrox/garden-advisor/internal/cache"
)

// Service orchestrates cached upstream fetches and the advisory pipeline.
// The cache is the only shared mutable state; it is written on success only,
// so a stalled upstream call never corrupts it. Concurrent misses for the
// same coordinates may each fetch; entries are immutable, so last write wins.
type Service struct {
	provider Provider
	cache    *cache.Cache
}

// NewService creates a Service over the given provider and cache.
func NewService(provider Provider, c *cache.Cache) *Service {
	return &Service{
		provider: provider,
		cache:    c,
	}
}

// GetCurrentWeather returns the current conditions for the coordinates,
// serving from cache while the entry is fresh.
func (s *Service) GetCurrentWeather(ctx context.Context, lat, lon float64) (WeatherSnapshot, error) {
	key := cache.Key("current", lat, lon)
	if v, ok := s.cache.Get(key); ok {
		return v.(WeatherSnapshot), nil
	}

	snap, err := s.provider.FetchCurrent(ctx, lat, lon)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	s.cache.Set(key, snap)
	return snap, nil
}

// GetForecast returns the 3-hour forecast points together with their per-day
// summaries, serving from cache while the entry is fresh.
func (s *Service) GetForecast(ctx context.Context, lat, lon float64) (Forecast, error) {
	key := cache.Key("forecast", lat, lon)
	if v, ok := s.cache.Get(key); ok {
		return v.(Forecast), nil
	}

	points, err := s.provider.FetchForecast(ctx, lat, lon)
	if err != nil {
		return Forecast{}, err
	}
	f := Forecast{
		Hourly: points,
		Daily:  SummarizeDaily(points),
	}
	s.cache.Set(key, f)
	return f, nil
}

// GetGardenAdvice fetches current weather and forecast for the coordinates
// and runs the advisory pipeline over them.
func (s *Service) GetGardenAdvice(ctx context.Context, lat, lon float64) (Advisory, error) {
	snap, err := s.GetCurrentWeather(ctx, lat, lon)
	if err != nil {
		return Advisory{}, err
	}
	forecast, err := s.GetForecast(ctx, lat, lon)
	if err != nil {
		return Advisory{}, err
	}
	return Evaluate(snap, forecast), nil
}

// ClearCache drops all cached upstream results.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// Evaluate runs hazards, blocking and recommendations in sequence and
// assembles the advisory payload. It is a pure function of its inputs.
func Evaluate(snap WeatherSnapshot, forecast Forecast) Advisory {
	alerts := EvaluateHazards(snap, forecast.Hourly)
	blocked := ResolveBlocked(alerts)
	recs := BuildRecommendations(snap, forecast.Hourly, forecast.Daily, blocked)

	return Advisory{
		Alerts:          alerts,
		Recommendations: recs,
		Summary:         summarize(snap, alerts, recs),
	}
}

// summarize picks the headline: the first alert wins, then the first
// recommendation, then a plain conditions line.
func summarize(snap WeatherSnapshot, alerts []Alert, recs []Recommendation) string {
	if len(alerts) > 0 {
		return alerts[0].Message
	}
	if len(recs) > 0 {
		return recs[0].Message
	}
	return fmt.Sprintf("%d°C, %s", snap.Temperature, snap.Description)
}
