package advisory

import (
	"testing"
	"time"
)

func TestSummarizeDailyEmptyInput(t *testing.T) {
	if got := SummarizeDaily(nil); len(got) != 0 {
		t.Fatalf("expected empty summary list, got %d entries", len(got))
	}
}

func TestSummarizeDailyGroupsByDate(t *testing.T) {
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	points := []ForecastPoint{
		pointAt(base, 6, 10),
		pointAt(base, 9, 14),
		pointAt(base, 12, 18),
		pointAt(base, 30, 12), // next day
		pointAt(base, 33, 16),
	}

	daily := SummarizeDaily(points)
	if len(daily) != 2 {
		t.Fatalf("expected 2 daily summaries, got %d", len(daily))
	}
	if daily[0].Date != "2024-05-15" || daily[1].Date != "2024-05-16" {
		t.Fatalf("dates out of order: %q, %q", daily[0].Date, daily[1].Date)
	}
	if daily[0].TempMin != 10 || daily[0].TempMax != 18 || daily[0].TempAvg != 14 {
		t.Fatalf("unexpected day temps: min=%v avg=%v max=%v", daily[0].TempMin, daily[0].TempAvg, daily[0].TempMax)
	}
}

func TestSummarizeDailyTempInvariant(t *testing.T) {
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	cases := [][]float64{
		{15.6},
		{-3.2, -1.1, 0.4},
		{20, 20, 20, 20},
		{7.7, 18.9},
	}

	for _, temps := range cases {
		var points []ForecastPoint
		for i, temp := range temps {
			points = append(points, pointAt(base, i*3, temp))
		}
		for _, d := range SummarizeDaily(points) {
			if d.TempMin > d.TempAvg || d.TempAvg > d.TempMax {
				t.Errorf("invariant violated for %v: min=%v avg=%v max=%v", temps, d.TempMin, d.TempAvg, d.TempMax)
			}
			if d.TotalRain < 0 {
				t.Errorf("negative total rain for %v", temps)
			}
		}
	}
}

func TestSummarizeDailySinglePointDay(t *testing.T) {
	base := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

	daily := SummarizeDaily([]ForecastPoint{pointAt(base, 0, 11.5)})
	if len(daily) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(daily))
	}
	d := daily[0]
	if d.TempMin != 11.5 || d.TempMax != 11.5 || d.TempAvg != 11.5 {
		t.Fatalf("degenerate day should have min=max=avg, got min=%v avg=%v max=%v", d.TempMin, d.TempAvg, d.TempMax)
	}
}

func TestSummarizeDailyAggregates(t *testing.T) {
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	p1 := pointAt(base, 6, 10)
	p1.Rain = 1.2
	p1.WindSpeed = 10
	p1.Humidity = 60
	p1.Pop = 30
	p1.Icon = "10d"

	p2 := pointAt(base, 9, 14)
	p2.Rain = 0.8
	p2.WindSpeed = 20
	p2.Humidity = 70
	p2.Pop = 80
	p2.Icon = "04d"

	p3 := pointAt(base, 12, 18)
	p3.WindSpeed = 12
	p3.Humidity = 50
	p3.Icon = "01d"

	d := SummarizeDaily([]ForecastPoint{p1, p2, p3})[0]

	if d.TotalRain != 2.0 {
		t.Errorf("TotalRain = %v, want 2.0", d.TotalRain)
	}
	if d.AvgWind != 14 {
		t.Errorf("AvgWind = %v, want 14", d.AvgWind)
	}
	if d.MaxWind != 20 {
		t.Errorf("MaxWind = %v, want 20", d.MaxWind)
	}
	if d.AvgHumidity != 60 {
		t.Errorf("AvgHumidity = %v, want 60", d.AvgHumidity)
	}
	if d.PrecipProbability != 80 {
		t.Errorf("PrecipProbability = %v, want 80", d.PrecipProbability)
	}
	// Icon comes from the middle point of the day.
	if d.Icon != "04d" {
		t.Errorf("Icon = %q, want %q", d.Icon, "04d")
	}
}

func TestSummarizeDailyDescriptionFrequency(t *testing.T) {
	base := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	mk := func(offset int, desc string) ForecastPoint {
		p := pointAt(base, offset, 15)
		p.Description = desc
		return p
	}

	daily := SummarizeDaily([]ForecastPoint{
		mk(3, "pochmurno"),
		mk(6, "deszcz"),
		mk(9, "deszcz"),
		mk(12, "pochmurno"),
	})
	// Tie between the two descriptions: first encountered wins.
	if daily[0].Description != "pochmurno" {
		t.Fatalf("Description = %q, want tie broken by first appearance", daily[0].Description)
	}

	daily = SummarizeDaily([]ForecastPoint{
		mk(3, "pochmurno"),
		mk(6, "deszcz"),
		mk(9, "deszcz"),
	})
	if daily[0].Description != "deszcz" {
		t.Fatalf("Description = %q, want most frequent", daily[0].Description)
	}
}
