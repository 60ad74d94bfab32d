package advisory

import "fmt"

// sprayWindLimit is 4 m/s expressed in km/h, above which droplet drift makes
// spraying ineffective.
const sprayWindLimit = 14.4

// BuildRecommendations produces at most one spray and one watering
// recommendation, skipping categories suppressed by the blocked set.
func BuildRecommendations(snap WeatherSnapshot, points []ForecastPoint, daily []DailySummary, blocked BlockedSet) []Recommendation {
	var recs []Recommendation
	if !blocked[RecommendationSpray] {
		if r := sprayRecommendation(snap, points, daily); r != nil {
			recs = append(recs, *r)
		}
	}
	if !blocked[RecommendationWatering] {
		if r := wateringRecommendation(snap, points, daily); r != nil {
			recs = append(recs, *r)
		}
	}
	return recs
}

func sprayRecommendation(snap WeatherSnapshot, points []ForecastPoint, daily []DailySummary) *Recommendation {
	temp := snap.Temperature
	wind := float64(snap.WindSpeed)
	rainSoon := rainWithin(points, snap.Timestamp, 2*3600)

	if temp >= 12 && temp <= 25 && wind < sprayWindLimit && !rainSoon && snap.Rain == 0 {
		hint := "najlepiej wieczorem po 18:00"
		if temp <= 20 {
			hint = "najlepiej rano przed 10:00 lub wieczorem po 18:00"
		}
		return &Recommendation{
			Type:     RecommendationSpray,
			Priority: PriorityHigh,
			Icon:     "🌿",
			Message:  fmt.Sprintf("Dobre warunki do oprysku, %s.", hint),
			Details:  fmt.Sprintf("Temperatura %d°C, wiatr %d km/h, bez opadów.", temp, snap.WindSpeed),
		}
	}

	var reason string
	switch {
	case temp < 10:
		reason = fmt.Sprintf("zbyt zimno (%d°C)", temp)
	case temp < 12:
		reason = fmt.Sprintf("niska temperatura (%d°C)", temp)
	case temp > 25:
		reason = fmt.Sprintf("zbyt gorąco (%d°C)", temp)
	case wind >= sprayWindLimit:
		reason = fmt.Sprintf("zbyt wietrznie (%d km/h)", snap.WindSpeed)
	default:
		reason = "opady deszczu"
	}

	rec := &Recommendation{
		Type:     RecommendationSpray,
		Priority: PriorityWarning,
		Icon:     "🌿",
	}
	if best, ok := bestSprayDay(daily); ok {
		rec.Message = fmt.Sprintf("Dziś niekorzystne warunki do oprysku: %s. Najlepszy dzień: %s.", reason, best.Date)
		rec.Details = fmt.Sprintf("%s: %.0f°C, wiatr %.0f km/h, opady %.1f mm.", best.Date, best.TempAvg, best.AvgWind, best.TotalRain)
	} else {
		rec.Message = fmt.Sprintf("Dziś niekorzystne warunki do oprysku: %s. Brak dobrego dnia w prognozie.", reason)
	}
	return rec
}

// bestSprayDay scans the days after today for the first strictly suitable
// one, falling back to a weighted score when none qualifies. The search is
// implicitly bounded by the provider's forecast horizon.
func bestSprayDay(daily []DailySummary) (DailySummary, bool) {
	if len(daily) < 2 {
		return DailySummary{}, false
	}
	upcoming := daily[1:]

	for _, d := range upcoming {
		if sprayDayOptimal(d) || sprayDayGood(d) {
			return d, true
		}
	}

	bestIdx := -1
	bestScore := 0
	for i, d := range upcoming {
		if s := sprayDayScore(d); s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return DailySummary{}, false
	}
	return upcoming[bestIdx], true
}

func sprayDayOptimal(d DailySummary) bool {
	return d.TempAvg >= 12 && d.TempAvg <= 20 && d.AvgWind < 10 && d.TotalRain < 0.5
}

func sprayDayGood(d DailySummary) bool {
	return d.TempAvg >= 10 && d.TempAvg <= 25 && d.AvgWind < 15 && d.TotalRain < 2
}

func sprayDayScore(d DailySummary) int {
	score := 100

	switch {
	case d.TempAvg < 10:
		score -= 50
	case d.TempAvg > 25:
		score -= 40
	}
	if d.TempAvg >= 12 && d.TempAvg <= 20 {
		score += 20
	}

	switch {
	case d.AvgWind > 20:
		score -= 50
	case d.AvgWind > 15:
		score -= 30
	case d.AvgWind < 10:
		score += 20
	}

	switch {
	case d.TotalRain > 5:
		score -= 50
	case d.TotalRain > 2:
		score -= 20
	case d.TotalRain < 0.5:
		score += 10
	}

	return score
}

// wateringRecommendation walks an ordered decision ladder; the first matching
// rule wins, which also suppresses every later watering line for this cycle.
func wateringRecommendation(snap WeatherSnapshot, points []ForecastPoint, daily []DailySummary) *Recommendation {
	temp := snap.Temperature

	if temp < 0 {
		return &Recommendation{
			Type:     RecommendationWatering,
			Priority: PriorityCritical,
			Icon:     "💧",
			Message:  "Nie podlewaj: woda zamarznie i uszkodzi korzenie.",
		}
	}

	if temp < 5 {
		if day, ok := firstWarmDay(daily); ok {
			return &Recommendation{
				Type:     RecommendationWatering,
				Priority: PriorityMedium,
				Icon:     "💧",
				Message:  fmt.Sprintf("Wstrzymaj podlewanie do %s, gdy się ociepli.", day.Date),
			}
		}
		return &Recommendation{
			Type:     RecommendationWatering,
			Priority: PriorityLow,
			Icon:     "💧",
			Message:  "Podlewaj minimalnie, tylko rośliny w pojemnikach.",
		}
	}

	if nightFrostAhead(snap, points) {
		return &Recommendation{
			Type:     RecommendationWatering,
			Priority: PriorityCritical,
			Icon:     "💧",
			Message:  "Nie podlewaj wieczorem: w nocy spodziewany przymrozek.",
		}
	}

	if rainExpectedWithin(points, snap.Timestamp, 24*3600) {
		return &Recommendation{
			Type:     RecommendationWatering,
			Priority: PriorityMedium,
			Icon:     "💧",
			Message:  "Odpuść podlewanie: w ciągu doby spodziewany deszcz.",
		}
	}

	recent := snap.Rain + rainSum(points, snap.Timestamp, 24*3600)
	if recent < 5 {
		switch {
		case temp > 32:
			return &Recommendation{
				Type:     RecommendationWatering,
				Priority: PriorityCritical,
				Icon:     "💧",
				Message:  "Podlewaj dwa razy dziennie: rano i wieczorem.",
				Details:  fmt.Sprintf("Upał %d°C przy braku opadów szybko wysusza podłoże.", temp),
			}
		case temp >= 25:
			return &Recommendation{
				Type:     RecommendationWatering,
				Priority: PriorityHigh,
				Icon:     "💧",
				Message:  "Podlej raz dziennie, rano lub wieczorem.",
			}
		case temp >= 15:
			return &Recommendation{
				Type:     RecommendationWatering,
				Priority: PriorityMedium,
				Icon:     "💧",
				Message:  "Rozważ podlewanie: sprawdź wilgotność gleby palcem.",
			}
		}
	}

	return nil
}

// firstWarmDay returns the first upcoming day with an average of at least
// 10°C.
func firstWarmDay(daily []DailySummary) (DailySummary, bool) {
	if len(daily) < 2 {
		return DailySummary{}, false
	}
	for _, d := range daily[1:] {
		if d.TempAvg >= 10 {
			return d, true
		}
	}
	return DailySummary{}, false
}

// nightFrostAhead reports whether any future night-window point in the
// forecast horizon drops below freezing.
func nightFrostAhead(snap WeatherSnapshot, points []ForecastPoint) bool {
	for _, p := range points {
		if p.Timestamp <= snap.Timestamp {
			continue
		}
		if isNightHour(p.Hour) && p.Temperature < 0 {
			return true
		}
	}
	return false
}

// rainWithin reports measurable rain on any forecast point inside the window.
func rainWithin(points []ForecastPoint, now, window int64) bool {
	for _, p := range points {
		if p.Timestamp <= now || p.Timestamp > now+window {
			continue
		}
		if p.Rain > 0 {
			return true
		}
	}
	return false
}

// rainExpectedWithin additionally treats a high precipitation probability as
// expected rain; the 3-hour resolution makes Pop meaningful at this scale.
func rainExpectedWithin(points []ForecastPoint, now, window int64) bool {
	for _, p := range points {
		if p.Timestamp <= now || p.Timestamp > now+window {
			continue
		}
		if p.Rain > 0 || p.Pop >= 60 {
			return true
		}
	}
	return false
}

func rainSum(points []ForecastPoint, now, window int64) float64 {
	var total float64
	for _, p := range points {
		if p.Timestamp <= now || p.Timestamp > now+window {
			continue
		}
		total += p.Rain
	}
	return total
}
