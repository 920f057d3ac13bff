package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/models"
)

// A forecast day with at least this many due cards gets a workload warning.
const heavyDayThreshold = 15

// Estimated review time per card, in minutes.
const minutesPerCard = 0.5

// BuildForecast projects, for each of the next days calendar days starting
// at now's day, how many of the given cards become due. The result always
// has exactly days entries, zero-filled where nothing is due. Cards due
// before today are left to the insight classifier's overdue section; cards
// due beyond the window are not counted.
func BuildForecast(cards []models.Card, days int, now time.Time) (*models.Forecast, error) {
	if days < 1 {
		return nil, errors.NewInvalidInputError("forecast days must be at least 1")
	}

	today := startOfDay(now)
	todayNum := dayNumber(now)
	counts := make([]int, days)
	for _, card := range cards {
		if card.NextReviewAt == nil {
			continue
		}
		idx := dayNumber(*card.NextReviewAt) - todayNum
		if idx < 0 || idx >= days {
			continue
		}
		counts[idx]++
	}

	f := &models.Forecast{Days: make([]models.ForecastDay, days)}
	for i, count := range counts {
		date := today.AddDate(0, 0, i)
		f.Days[i] = models.ForecastDay{
			Date:     date,
			Label:    dayLabel(date, i),
			Count:    count,
			Estimate: timeEstimate(count),
			Heavy:    count >= heavyDayThreshold,
		}
		f.TotalCount += count
		if count >= heavyDayThreshold {
			f.HeavyDayCount++
		}
	}

	// Aggregate estimate from the raw total, not from the per-day strings,
	// so rounding does not compound.
	f.TotalEstimate = timeEstimate(f.TotalCount)
	f.HeavySummary = heavySummary(f.HeavyDayCount)
	f.Empty = f.TotalCount == 0
	return f, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayNumber maps a timestamp to its calendar day ordinal. Bucketing on
// ordinals keeps day arithmetic exact across DST-shortened days, where
// elapsed hours between midnights are not a multiple of 24.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// dayLabel renders the user-facing name of a forecast day: "Today",
// "Tomorrow", then three-letter weekday abbreviations.
func dayLabel(date time.Time, index int) string {
	switch index {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Format("Mon")
	}
}

// timeEstimate renders an estimated workload as "~N min" below an hour
// and "~Nh" at or above it.
func timeEstimate(count int) string {
	minutes := float64(count) * minutesPerCard
	if minutes < 60 {
		return fmt.Sprintf("~%d min", int(math.Round(minutes)))
	}
	return fmt.Sprintf("~%dh", int(math.Round(minutes/60)))
}

func heavySummary(heavyDays int) string {
	switch heavyDays {
	case 0:
		return ""
	case 1:
		return "1 heavy review day"
	default:
		return fmt.Sprintf("%d heavy review days", heavyDays)
	}
}
