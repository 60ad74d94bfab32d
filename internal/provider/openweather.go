package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Hexrox/garden-advisor/internal/advisory"
)

// OpenWeather implements the advisory.Provider interface against the
// OpenWeatherMap current-weather and 5-day/3-hour forecast endpoints.
type OpenWeather struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	httpCfg     clientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeather(client *http.Client, apiKey string) *OpenWeather {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeather{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg: clientConfig{
			Client: client,
			Backoff: backoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeather) Name() string {
	return p.name
}

func (p *OpenWeather) query(lat, lon float64) url.Values {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	values.Set("lang", "pl")
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	return values
}

func (p *OpenWeather) FetchCurrent(ctx context.Context, lat, lon float64) (advisory.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return advisory.WeatherSnapshot{}, advisory.ErrNotConfigured
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.currentURL, p.query(lat, lon).Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return advisory.WeatherSnapshot{}, fmt.Errorf("%w: %v", advisory.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Rain struct {
			OneH float64 `json:"1h"`
		} `json:"rain"`
		Clouds struct {
			All int `json:"all"`
		} `json:"clouds"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Sys struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return advisory.WeatherSnapshot{}, fmt.Errorf("%w: decoding current weather: %v", advisory.ErrUpstreamUnavailable, err)
	}

	snap := advisory.WeatherSnapshot{
		Temperature:   int(math.Round(payload.Main.Temp)),
		FeelsLike:     int(math.Round(payload.Main.FeelsLike)),
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeed:     int(math.Round(payload.Wind.Speed * 3.6)),
		WindDirection: payload.Wind.Deg,
		Rain:          payload.Rain.OneH,
		Clouds:        payload.Clouds.All,
		Timestamp:     payload.Dt,
		Sunrise:       payload.Sys.Sunrise,
		Sunset:        payload.Sys.Sunset,
	}
	if len(payload.Weather) > 0 {
		snap.Description = payload.Weather[0].Description
		snap.Icon = payload.Weather[0].Icon
	}
	return snap, nil
}

func (p *OpenWeather) FetchForecast(ctx context.Context, lat, lon float64) ([]advisory.ForecastPoint, error) {
	if p.apiKey == "" {
		return nil, advisory.ErrNotConfigured
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.forecastURL, p.query(lat, lon).Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", advisory.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		City struct {
			Timezone int `json:"timezone"` // shift from UTC in seconds
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				TempMin  float64 `json:"temp_min"`
				TempMax  float64 `json:"temp_max"`
				Humidity int     `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Clouds struct {
				All int `json:"all"`
			} `json:"clouds"`
			Wind struct {
				Speed float64 `json:"speed"` // m/s
			} `json:"wind"`
			Rain struct {
				ThreeH float64 `json:"3h"`
			} `json:"rain"`
			Pop float64 `json:"pop"` // 0-1
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding forecast: %v", advisory.ErrUpstreamUnavailable, err)
	}

	offset := time.Duration(payload.City.Timezone) * time.Second
	points := make([]advisory.ForecastPoint, 0, len(payload.List))

	for _, item := range payload.List {
		local := time.Unix(item.Dt, 0).UTC().Add(offset)

		point := advisory.ForecastPoint{
			Timestamp:   item.Dt,
			Date:        local.Format("2006-01-02"),
			Time:        local.Format("15:04"),
			Hour:        local.Hour(),
			Temperature: item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Rain:        item.Rain.ThreeH,
			WindSpeed:   item.Wind.Speed * 3.6,
			Humidity:    item.Main.Humidity,
			Clouds:      item.Clouds.All,
			Pop:         int(math.Round(item.Pop * 100)),
		}
		if len(item.Weather) > 0 {
			point.Description = item.Weather[0].Description
			point.Icon = item.Weather[0].Icon
		}
		points = append(points, point)
	}

	return points, nil
}
