package advisory

import "context"

// Provider abstracts the upstream weather source. Implementations return
// fully normalized domain values (units converted, calendar fields derived).
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, lat, lon float64) (WeatherSnapshot, error)
	FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastPoint, error)
}
