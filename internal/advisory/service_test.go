package advisory

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Hexrox/garden-advisor/internal/cache"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

// fakeProvider counts upstream calls and serves canned data.
type fakeProvider struct {
	snap          WeatherSnapshot
	points        []ForecastPoint
	err           error
	currentCalls  int
	forecastCalls int
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) FetchCurrent(ctx context.Context, lat, lon float64) (WeatherSnapshot, error) {
	f.currentCalls++
	if f.err != nil {
		return WeatherSnapshot{}, f.err
	}
	return f.snap, nil
}

func (f *fakeProvider) FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastPoint, error) {
	f.forecastCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

func newTestService(p Provider, clk *fakeClock) *Service {
	return NewService(p, cache.New(30*time.Minute, clk.Now))
}

func TestGetCurrentWeatherUsesCacheWithinTTL(t *testing.T) {
	clk := &fakeClock{t: testBase}
	prov := &fakeProvider{snap: mildSnapshot(testBase)}
	svc := newTestService(prov, clk)

	ctx := context.Background()
	if _, err := svc.GetCurrentWeather(ctx, 52.23, 21.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clk.Advance(29 * time.Minute)
	if _, err := svc.GetCurrentWeather(ctx, 52.23, 21.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prov.currentCalls != 1 {
		t.Fatalf("provider called %d times within TTL, want 1", prov.currentCalls)
	}

	clk.Advance(2 * time.Minute) // 31 minutes since the fetch
	if _, err := svc.GetCurrentWeather(ctx, 52.23, 21.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prov.currentCalls != 2 {
		t.Fatalf("provider called %d times after expiry, want 2", prov.currentCalls)
	}
}

func TestGetCurrentWeatherCacheIsPerCoordinate(t *testing.T) {
	clk := &fakeClock{t: testBase}
	prov := &fakeProvider{snap: mildSnapshot(testBase)}
	svc := newTestService(prov, clk)

	ctx := context.Background()
	svc.GetCurrentWeather(ctx, 52.23, 21.01)
	svc.GetCurrentWeather(ctx, 50.06, 19.94)

	if prov.currentCalls != 2 {
		t.Fatalf("distinct coordinates must fetch separately, got %d calls", prov.currentCalls)
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	clk := &fakeClock{t: testBase}
	prov := &fakeProvider{snap: mildSnapshot(testBase)}
	svc := newTestService(prov, clk)

	ctx := context.Background()
	svc.GetCurrentWeather(ctx, 52.23, 21.01)
	svc.ClearCache()
	svc.GetCurrentWeather(ctx, 52.23, 21.01)

	if prov.currentCalls != 2 {
		t.Fatalf("expected refetch after ClearCache, got %d calls", prov.currentCalls)
	}
}

func TestUpstreamFailureIsNotCached(t *testing.T) {
	clk := &fakeClock{t: testBase}
	prov := &fakeProvider{err: ErrUpstreamUnavailable}
	svc := newTestService(prov, clk)

	ctx := context.Background()
	if _, err := svc.GetCurrentWeather(ctx, 52.23, 21.01); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}

	// Provider recovers; the failed call must not have poisoned the cache.
	prov.err = nil
	prov.snap = mildSnapshot(testBase)
	snap, err := svc.GetCurrentWeather(ctx, 52.23, 21.01)
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if snap.Temperature != 18 {
		t.Fatalf("got stale snapshot %+v", snap)
	}
}

func TestGetForecastBuildsDailySummaries(t *testing.T) {
	clk := &fakeClock{t: testBase}
	prov := &fakeProvider{points: mildForecast(testBase)}
	svc := newTestService(prov, clk)

	f, err := svc.GetForecast(context.Background(), 52.23, 21.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Hourly) != 16 {
		t.Fatalf("hourly points = %d, want 16", len(f.Hourly))
	}
	if len(f.Daily) == 0 {
		t.Fatal("expected daily summaries alongside hourly points")
	}

	svc.GetForecast(context.Background(), 52.23, 21.01)
	if prov.forecastCalls != 1 {
		t.Fatalf("forecast fetched %d times within TTL, want 1", prov.forecastCalls)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	snap := mildSnapshot(testBase)
	points := mildForecast(testBase)
	forecast := Forecast{Hourly: points, Daily: SummarizeDaily(points)}

	first := Evaluate(snap, forecast)
	second := Evaluate(snap, forecast)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluation not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestEvaluateHeatwaveScenario(t *testing.T) {
	// 40°C, light wind, bone dry.
	snap := WeatherSnapshot{
		Temperature: 40,
		WindSpeed:   5,
		Humidity:    30,
		Description: "bezchmurnie",
		Timestamp:   testBase.Unix(),
	}
	var points []ForecastPoint
	for i := 1; i <= 16; i++ {
		points = append(points, pointAt(testBase, i*3, 35))
	}
	forecast := Forecast{Hourly: points, Daily: SummarizeDaily(points)}

	result := Evaluate(snap, forecast)

	heatCount := 0
	for _, a := range result.Alerts {
		switch a.Type {
		case AlertExtremeHeat, AlertSevereHeat, AlertModerateHeat:
			heatCount++
			if a.Type != AlertExtremeHeat {
				t.Errorf("heat alert type = %q, want extreme-heat", a.Type)
			}
		}
	}
	if heatCount != 1 {
		t.Fatalf("heat alerts = %d, want exactly 1", heatCount)
	}

	var watering *Recommendation
	for i := range result.Recommendations {
		r := &result.Recommendations[i]
		if r.Type == RecommendationSpray {
			t.Fatalf("spray must be blocked during extreme heat, got %+v", r)
		}
		if r.Type == RecommendationWatering {
			watering = r
		}
	}
	if watering == nil {
		t.Fatal("expected a watering recommendation")
	}
	if watering.Priority != PriorityCritical {
		t.Fatalf("watering priority = %q, want critical (twice daily)", watering.Priority)
	}
}

func TestEvaluateMildDayScenario(t *testing.T) {
	snap := mildSnapshot(testBase)
	points := mildForecast(testBase)
	forecast := Forecast{Hourly: points, Daily: SummarizeDaily(points)}

	result := Evaluate(snap, forecast)
	if len(result.Alerts) != 0 {
		t.Fatalf("expected no alerts on a mild day, got %+v", result.Alerts)
	}

	var spray *Recommendation
	for i := range result.Recommendations {
		if result.Recommendations[i].Type == RecommendationSpray {
			spray = &result.Recommendations[i]
		}
	}
	if spray == nil {
		t.Fatal("expected a spray recommendation")
	}
	if spray.Priority != PriorityHigh || !strings.Contains(spray.Message, "Dobre warunki") {
		t.Fatalf("spray = %+v, want high-priority good-conditions advice", spray)
	}

	// With no alerts the first recommendation becomes the headline.
	if result.Summary != result.Recommendations[0].Message {
		t.Fatalf("summary = %q, want first recommendation message", result.Summary)
	}
}

func TestSummaryHeadlinePrefersFirstAlert(t *testing.T) {
	snap := WeatherSnapshot{Temperature: -2, Timestamp: testBase.Unix(), Description: "mróz"}
	forecast := Forecast{}

	result := Evaluate(snap, forecast)
	if len(result.Alerts) == 0 {
		t.Fatal("expected a frost alert")
	}
	if result.Summary != result.Alerts[0].Message {
		t.Fatalf("summary = %q, want first alert message %q", result.Summary, result.Alerts[0].Message)
	}
}

func TestSummaryFallbackToConditions(t *testing.T) {
	snap := WeatherSnapshot{Temperature: 21, Description: "pochmurno"}
	got := summarize(snap, nil, nil)
	if got != "21°C, pochmurno" {
		t.Fatalf("summary fallback = %q", got)
	}
}
