package advisory

import (
	"fmt"
	"math"

	"github.com/Hexrox/garden-advisor/internal/common"
)

// hazardCheck inspects the inputs and returns at most one alert. Checks read
// only their arguments, so their order never changes which alerts fire; it
// only fixes which alert becomes the advisory headline.
type hazardCheck func(snap WeatherSnapshot, points []ForecastPoint) *Alert

var hazardChecks = []hazardCheck{
	checkFrost,
	checkHeat,
	checkWind,
	checkFungal,
	checkStorm,
	checkDrought,
	checkTempSwing,
}

// EvaluateHazards runs the full battery of threshold checks over the current
// snapshot and the forecast. It is a pure function of its inputs.
func EvaluateHazards(snap WeatherSnapshot, points []ForecastPoint) []Alert {
	var alerts []Alert
	for _, check := range hazardChecks {
		if a := check(snap, points); a != nil {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

// nightWindowTemp returns the lowest forecast temperature among points that
// fall in the 22:00-06:00 night window, are strictly in the future and within
// the next 24 hours.
func nightWindowTemp(snap WeatherSnapshot, points []ForecastPoint) (float64, bool) {
	horizon := snap.Timestamp + 24*3600
	minTemp := math.MaxFloat64
	found := false
	for _, p := range points {
		if p.Timestamp <= snap.Timestamp || p.Timestamp > horizon {
			continue
		}
		if !isNightHour(p.Hour) {
			continue
		}
		if p.Temperature < minTemp {
			minTemp = p.Temperature
			found = true
		}
	}
	return minTemp, found
}

func isNightHour(hour int) bool {
	return hour >= 22 || hour <= 6
}

func checkFrost(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	now := snap.Temperature
	minNight, hasNight := nightWindowTemp(snap, points)

	switch {
	case now < 0 && hasNight && minNight < float64(now)-1:
		return &Alert{
			Type:     AlertFrost,
			Priority: PriorityCritical,
			Icon:     "❄️",
			Message:  fmt.Sprintf("Mróz! Obecnie %d°C, w nocy spadek do %.0f°C.", now, minNight),
			Details:  "Okryj wrażliwe rośliny agrowłókniną i przenieś doniczki do środka.",
		}
	case now < 0:
		return &Alert{
			Type:     AlertFrost,
			Priority: PriorityCritical,
			Icon:     "❄️",
			Message:  fmt.Sprintf("Mróz! Temperatura wynosi %d°C.", now),
			Details:  "Okryj wrażliwe rośliny agrowłókniną i przenieś doniczki do środka.",
		}
	case hasNight && minNight < 0:
		return &Alert{
			Type:     AlertFrostWarning,
			Priority: PriorityCritical,
			Icon:     "❄️",
			Message:  fmt.Sprintf("Nocny przymrozek: temperatura spadnie do %.0f°C.", minNight),
			Details:  "Zabezpiecz rośliny przed wieczorem.",
		}
	case now < 3 && hasNight && minNight < float64(now)-1:
		return &Alert{
			Type:     AlertColdWarning,
			Priority: PriorityHigh,
			Icon:     "🥶",
			Message:  fmt.Sprintf("Ochłodzenie: w nocy temperatura spadnie do %.0f°C.", minNight),
		}
	}
	return nil
}

func checkHeat(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	now := snap.Temperature
	switch {
	case now > 38:
		return &Alert{
			Type:     AlertExtremeHeat,
			Priority: PriorityCritical,
			Icon:     "🔥",
			Message:  fmt.Sprintf("Ekstremalny upał: %d°C!", now),
			Details:  "Zacień uprawy i podlewaj wyłącznie wcześnie rano lub po zmroku.",
		}
	case now > 32:
		return &Alert{
			Type:     AlertSevereHeat,
			Priority: PriorityCritical,
			Icon:     "🔥",
			Message:  fmt.Sprintf("Silny upał: %d°C.", now),
			Details:  "Rośliny w pojemnikach mogą wymagać podlewania dwa razy dziennie.",
		}
	case now >= 28:
		return &Alert{
			Type:     AlertModerateHeat,
			Priority: PriorityHigh,
			Icon:     "🌡️",
			Message:  fmt.Sprintf("Upał: %d°C.", now),
			Details:  "Obserwuj rośliny pod kątem więdnięcia.",
		}
	}
	return nil
}

func checkWind(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	wind := float64(snap.WindSpeed)
	switch {
	case wind > 60:
		return &Alert{
			Type:     AlertExtremeWind,
			Priority: PriorityCritical,
			Icon:     "🌪️",
			Message:  fmt.Sprintf("Bardzo silny wiatr: %d km/h!", snap.WindSpeed),
			Details:  "Zabezpiecz tunele, pergole i wysokie rośliny.",
		}
	case wind > 25:
		return &Alert{
			Type:     AlertStrongWind,
			Priority: PriorityHigh,
			Icon:     "💨",
			Message:  fmt.Sprintf("Silny wiatr: %d km/h.", snap.WindSpeed),
			Details:  "Sprawdź podpory pomidorów i pnączy.",
		}
	case wind > 14.4:
		return &Alert{
			Type:     AlertModerateWind,
			Priority: PriorityMedium,
			Icon:     "💨",
			Message:  fmt.Sprintf("Umiarkowany wiatr: %d km/h.", snap.WindSpeed),
		}
	}
	return nil
}

func checkFungal(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	now := snap.Temperature
	if snap.Humidity > 80 && now >= 15 && now <= 25 {
		return &Alert{
			Type:     AlertFungalRisk,
			Priority: PriorityHigh,
			Icon:     "🍄",
			Message:  fmt.Sprintf("Wysokie ryzyko chorób grzybowych (wilgotność %d%%).", snap.Humidity),
			Details:  "Unikaj zraszania liści, zadbaj o przewiewność roślin.",
		}
	}
	if snap.Humidity > 70 {
		return &Alert{
			Type:     AlertFungalWarning,
			Priority: PriorityMedium,
			Icon:     "🍄",
			Message:  fmt.Sprintf("Podwyższona wilgotność: %d%%.", snap.Humidity),
		}
	}
	return nil
}

func checkStorm(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	if !isStormDescription(snap.Description) {
		return nil
	}
	return &Alert{
		Type:     AlertStormWarning,
		Priority: PriorityHigh,
		Icon:     "⛈️",
		Message:  "Możliwa burza w okolicy.",
		Details:  "Odłóż prace w ogrodzie do przejścia frontu.",
	}
}

// isStormDescription is a substring heuristic over the provider's free-text
// description. Isolated here so it can be swapped for a real severe-weather
// feed without touching the rest of the engine.
func isStormDescription(desc string) bool {
	return common.HasAny(desc, "burz", "grzmot", "thunder")
}

// droughtWindow covers roughly 48 hours of 3-hour forecast points.
const droughtWindow = 16

func checkDrought(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	// Below 5°C the garden is dormant and rainfall deficit is irrelevant.
	if snap.Temperature < 5 {
		return nil
	}

	var total float64
	for i, p := range points {
		if i >= droughtWindow {
			break
		}
		total += p.Rain
	}
	if total >= 2 {
		return nil
	}
	return &Alert{
		Type:     AlertDrought,
		Priority: PriorityHigh,
		Icon:     "🏜️",
		Message:  fmt.Sprintf("Brak opadów w najbliższych 48h (prognoza: %.1f mm).", total),
		Details:  "Zaplanuj podlewanie, zwłaszcza młodych nasadzeń.",
	}
}

// tempSwingWindow covers roughly 24 hours of 3-hour forecast points.
const tempSwingWindow = 8

func checkTempSwing(snap WeatherSnapshot, points []ForecastPoint) *Alert {
	if len(points) == 0 {
		return nil
	}

	minTemp := math.MaxFloat64
	maxTemp := -math.MaxFloat64
	for i, p := range points {
		if i >= tempSwingWindow {
			break
		}
		if p.Temperature < minTemp {
			minTemp = p.Temperature
		}
		if p.Temperature > maxTemp {
			maxTemp = p.Temperature
		}
	}
	if maxTemp-minTemp <= 10 {
		return nil
	}
	return &Alert{
		Type:     AlertTempSwing,
		Priority: PriorityHigh,
		Icon:     "🌡️",
		Message:  fmt.Sprintf("Duże wahania temperatury w ciągu doby: od %.0f°C do %.0f°C.", minTemp, maxTemp),
		Details:  "Wahania osłabiają rośliny ciepłolubne; rozważ okrycie na noc.",
	}
}
