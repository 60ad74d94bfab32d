package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Hexrox/garden-advisor/internal/advisory"
)

var validate = validator.New()

// Geocoder resolves a place name to coordinates when the caller does not
// supply lat/lon directly.
type Geocoder interface {
	Resolve(city, country string) (float64, float64, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *advisory.Service, geo Geocoder) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		coords, err := parseCoords(c, geo)
		if err != nil {
			return err
		}

		snapshot, svcErr := service.GetCurrentWeather(c.Context(), coords.Lat, coords.Lon)
		if svcErr != nil {
			return mapServiceError(svcErr)
		}
		return c.JSON(snapshot)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		coords, err := parseCoords(c, geo)
		if err != nil {
			return err
		}

		forecast, svcErr := service.GetForecast(c.Context(), coords.Lat, coords.Lon)
		if svcErr != nil {
			return mapServiceError(svcErr)
		}
		return c.JSON(forecast)
	})

	v1.Get("/garden/advice", func(c *fiber.Ctx) error {
		coords, err := parseCoords(c, geo)
		if err != nil {
			return err
		}

		advice, svcErr := service.GetGardenAdvice(c.Context(), coords.Lat, coords.Lon)
		if svcErr != nil {
			return mapServiceError(svcErr)
		}
		return c.JSON(advice)
	})
}

// coordsQuery holds validated coordinates for an advisory request.
type coordsQuery struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lon float64 `validate:"min=-180,max=180"`
}

// parseCoords accepts either lat+lon query parameters or a city (with
// optional country) resolved through the geocoder.
func parseCoords(c *fiber.Ctx, geo Geocoder) (coordsQuery, error) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" && lonStr == "" {
		city := c.Query("city")
		if city == "" || geo == nil {
			return coordsQuery{}, fiber.NewError(fiber.StatusBadRequest, "lat and lon (or city) query parameters are required")
		}

		lat, lon, err := geo.Resolve(city, c.Query("country"))
		if err != nil {
			if errors.Is(err, advisory.ErrNotConfigured) {
				return coordsQuery{}, fiber.NewError(fiber.StatusServiceUnavailable, "geocoding is not configured")
			}
			return coordsQuery{}, fiber.NewError(fiber.StatusBadGateway, "failed to resolve location")
		}
		return coordsQuery{Lat: lat, Lon: lon}, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return coordsQuery{}, fiber.NewError(fiber.StatusBadRequest, "invalid lat query parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return coordsQuery{}, fiber.NewError(fiber.StatusBadRequest, "invalid lon query parameter")
	}

	q := coordsQuery{Lat: lat, Lon: lon}
	if err := validate.Struct(q); err != nil {
		return coordsQuery{}, fiber.NewError(fiber.StatusBadRequest, "coordinates out of range")
	}
	return q, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, advisory.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, "weather provider is not configured")
	case errors.Is(err, advisory.ErrUpstreamUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build advisory")
	}
}
