package advisory

import "time"

// testBase is noon on a spring day; hazard windows in these tests are laid
// out relative to it.
var testBase = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// pointAt builds a forecast point offset by whole hours from base, with the
// derived calendar fields filled in the way the provider layer does.
func pointAt(base time.Time, offsetHours int, temp float64) ForecastPoint {
	ts := base.Add(time.Duration(offsetHours) * time.Hour)
	return ForecastPoint{
		Timestamp:   ts.Unix(),
		Date:        ts.Format("2006-01-02"),
		Time:        ts.Format("15:04"),
		Hour:        ts.Hour(),
		Temperature: temp,
		TempMin:     temp,
		TempMax:     temp,
	}
}

// mildSnapshot returns current conditions that trigger no hazard on their
// own.
func mildSnapshot(base time.Time) WeatherSnapshot {
	return WeatherSnapshot{
		Temperature: 18,
		FeelsLike:   18,
		Humidity:    55,
		Pressure:    1015,
		WindSpeed:   8,
		Description: "zachmurzenie małe",
		Icon:        "02d",
		Timestamp:   base.Unix(),
	}
}

// mildForecast returns two days of 3-hour points that trigger no hazard:
// enough rain beyond the 2-hour spray window to avoid drought, and a
// temperature band narrower than the swing threshold.
func mildForecast(base time.Time) []ForecastPoint {
	var points []ForecastPoint
	for i := 1; i <= 16; i++ {
		p := pointAt(base, i*3, 16)
		if i >= 4 && i <= 11 {
			p.Rain = 0.5
		}
		points = append(points, p)
	}
	return points
}
