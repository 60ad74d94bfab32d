package advisory

import "math"

// SummarizeDaily groups 3-hour forecast points into one summary per calendar
// date, in order of first appearance. An empty input yields an empty result.
func SummarizeDaily(points []ForecastPoint) []DailySummary {
	if len(points) == 0 {
		return nil
	}

	var order []string
	groups := make(map[string][]ForecastPoint)
	for _, p := range points {
		if _, ok := groups[p.Date]; !ok {
			order = append(order, p.Date)
		}
		groups[p.Date] = append(groups[p.Date], p)
	}

	summaries := make([]DailySummary, 0, len(order))
	for _, date := range order {
		summaries = append(summaries, summarizeDay(date, groups[date]))
	}
	return summaries
}

func summarizeDay(date string, points []ForecastPoint) DailySummary {
	var (
		sumTemp     float64
		sumWind     float64
		sumHumidity float64
		totalRain   float64
		maxWind     float64
	)

	tempMin := points[0].TempMin
	tempMax := points[0].TempMax
	maxPop := 0

	descCounts := make(map[string]int)
	var descOrder []string

	for _, p := range points {
		sumTemp += p.Temperature
		sumWind += p.WindSpeed
		sumHumidity += float64(p.Humidity)
		totalRain += p.Rain

		if p.TempMin < tempMin {
			tempMin = p.TempMin
		}
		if p.TempMax > tempMax {
			tempMax = p.TempMax
		}
		if p.WindSpeed > maxWind {
			maxWind = p.WindSpeed
		}
		if p.Pop > maxPop {
			maxPop = p.Pop
		}

		if _, seen := descCounts[p.Description]; !seen {
			descOrder = append(descOrder, p.Description)
		}
		descCounts[p.Description]++
	}

	n := float64(len(points))

	// Rounding the average can push it past a degenerate min=max day; clamp
	// so tempMin <= tempAvg <= tempMax always holds.
	tempAvg := math.Round(sumTemp / n)
	if tempAvg < tempMin {
		tempAvg = tempMin
	}
	if tempAvg > tempMax {
		tempAvg = tempMax
	}

	// Most frequent description, ties broken by first appearance.
	bestDesc := descOrder[0]
	for _, d := range descOrder {
		if descCounts[d] > descCounts[bestDesc] {
			bestDesc = d
		}
	}

	return DailySummary{
		Date:              date,
		TempMin:           tempMin,
		TempMax:           tempMax,
		TempAvg:           tempAvg,
		TotalRain:         totalRain,
		AvgWind:           math.Round(sumWind / n),
		MaxWind:           maxWind,
		AvgHumidity:       int(math.Round(sumHumidity / n)),
		PrecipProbability: maxPop,
		Icon:              points[len(points)/2].Icon,
		Description:       bestDesc,
	}
}
