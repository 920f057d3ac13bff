package models

import "time"

// ForecastDay is one projected calendar day of review workload.
type ForecastDay struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Count    int       `json:"count"`
	Estimate string    `json:"estimate"`
	Heavy    bool      `json:"heavy"`
}

// Forecast is the full projection window plus aggregate fields.
// Empty is set when every day in the window has a zero count, so the
// caller can render a single empty-state message instead of N empty rows.
type Forecast struct {
	Days          []ForecastDay `json:"days"`
	TotalCount    int           `json:"total_count"`
	TotalEstimate string        `json:"total_estimate"`
	HeavyDayCount int           `json:"heavy_day_count"`
	HeavySummary  string        `json:"heavy_summary,omitempty"`
	Empty         bool          `json:"empty"`
}
