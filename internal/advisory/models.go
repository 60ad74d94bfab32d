package advisory

// Priority ranks how urgently an alert or recommendation should be surfaced.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"

	// PriorityWarning marks a recommendation that explains why today is
	// unsuitable instead of suggesting an action.
	PriorityWarning Priority = "warning"
)

// AlertType identifies a hazard category. Each category emits at most one
// alert per evaluation; categories are independent of each other.
type AlertType string

const (
	AlertFrost         AlertType = "frost"
	AlertFrostWarning  AlertType = "frost-warning"
	AlertColdWarning   AlertType = "cold-warning"
	AlertExtremeHeat   AlertType = "extreme-heat"
	AlertSevereHeat    AlertType = "severe-heat"
	AlertModerateHeat  AlertType = "moderate-heat"
	AlertExtremeWind   AlertType = "extreme-wind"
	AlertStrongWind    AlertType = "strong-wind"
	AlertModerateWind  AlertType = "moderate-wind"
	AlertFungalRisk    AlertType = "fungal-risk"
	AlertFungalWarning AlertType = "fungal-warning"
	AlertStormWarning  AlertType = "storm-warning"
	AlertDrought       AlertType = "drought"
	AlertTempSwing     AlertType = "temp-swing"
)

// RecommendationType identifies a gardening action category.
type RecommendationType string

const (
	RecommendationSpray    RecommendationType = "spray"
	RecommendationWatering RecommendationType = "watering"
)

// WeatherSnapshot is the normalized view of current conditions, produced
// fresh per provider call and immutable afterwards.
type WeatherSnapshot struct {
	Temperature   int     `json:"temperature"` // °C
	FeelsLike     int     `json:"feelsLike"`
	Humidity      int     `json:"humidity"` // %
	Pressure      int     `json:"pressure"` // hPa
	WindSpeed     int     `json:"windSpeed"` // km/h
	WindDirection int     `json:"windDirection"` // degrees
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Rain          float64 `json:"rain"` // mm over the last hour
	Clouds        int     `json:"clouds"` // %
	Timestamp     int64   `json:"timestamp"` // unix seconds
	Sunrise       int64   `json:"sunrise"`
	Sunset        int64   `json:"sunset"`
}

// ForecastPoint is one 3-hour step of the provider forecast, with the
// calendar fields already derived in the provider's local time.
type ForecastPoint struct {
	Timestamp   int64   `json:"timestamp"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Time        string  `json:"time"` // HH:MM
	Hour        int     `json:"-"`
	Temperature float64 `json:"temperature"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Rain        float64 `json:"rain"` // mm over 3h
	WindSpeed   float64 `json:"windSpeed"` // km/h
	Humidity    int     `json:"humidity"`
	Clouds      int     `json:"clouds"`
	Pop         int     `json:"pop"` // precipitation probability, 0-100
}

// DailySummary aggregates the forecast points of one calendar day.
type DailySummary struct {
	Date              string  `json:"date"`
	TempMin           float64 `json:"tempMin"`
	TempMax           float64 `json:"tempMax"`
	TempAvg           float64 `json:"tempAvg"`
	TotalRain         float64 `json:"totalRain"`
	AvgWind           float64 `json:"avgWind"`
	MaxWind           float64 `json:"maxWind"`
	AvgHumidity       int     `json:"avgHumidity"`
	PrecipProbability int     `json:"precipProbability"`
	Icon              string  `json:"icon"`
	Description       string  `json:"description"`
}

// Forecast bundles the raw 3-hour points with their per-day summaries.
type Forecast struct {
	Hourly []ForecastPoint `json:"hourly"`
	Daily  []DailySummary  `json:"daily"`
}

// Alert is a hazard signal derived from current and forecast weather,
// independent of any suggested action.
type Alert struct {
	Type     AlertType `json:"type"`
	Priority Priority  `json:"priority"`
	Icon     string    `json:"icon"`
	Message  string    `json:"message"`
	Details  string    `json:"details,omitempty"`
}

// Recommendation is a suggested gardening action for today, or an
// explanation of why today is unsuitable.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Priority Priority           `json:"priority"`
	Icon     string             `json:"icon"`
	Message  string             `json:"message"`
	Details  string             `json:"details,omitempty"`
}

// Advisory is the assembled result of one evaluation cycle.
type Advisory struct {
	Alerts          []Alert          `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}
