// Package srs implements the spaced-repetition review engine: an SM-2
// scheduler, a review-workload forecast generator, and an insight
// classifier. All functions are pure: they take an explicit "now", never
// mutate their inputs, and hold no state across calls, so they are safe
// to invoke concurrently.
package srs

import (
	"math"
	"time"

	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/models"
)

// Quality rating bounds. A review at or above PassThreshold counts as a
// successful recall.
const (
	MinQuality    = 0
	MaxQuality    = 5
	PassThreshold = 3
)

const (
	minIntervalDays = 1
	secondInterval  = 6
	failEasePenalty = 0.2
)

// Schedule computes the next scheduling state for a card after a review
// with the given quality (0-5). The input card is not modified; the new
// state is returned for the caller to persist. An out-of-range quality is
// a caller bug and is rejected rather than clamped.
func Schedule(card models.Card, quality int, now time.Time) (models.Card, error) {
	if quality < MinQuality || quality > MaxQuality {
		return models.Card{}, errors.NewInvalidInputError("quality must be between 0 and 5")
	}

	next := card

	if quality < PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = minIntervalDays
		next.EaseFactor = clampEase(card.EaseFactor - failEasePenalty)
	} else {
		next.Repetitions = card.Repetitions + 1
		next.EaseFactor = clampEase(nextEase(card.EaseFactor, quality))
		next.IntervalDays = nextInterval(card.IntervalDays, next.Repetitions, next.EaseFactor)
	}

	due := now.AddDate(0, 0, next.IntervalDays)
	next.NextReviewAt = &due
	reviewed := now
	next.LastReviewedAt = &reviewed
	return next, nil
}

// nextEase applies the SM-2 ease update: better-than-adequate quality
// raises the ease factor, barely-adequate leaves it roughly flat.
func nextEase(ease float64, quality int) float64 {
	miss := float64(MaxQuality - quality)
	return ease + 0.1 - miss*(0.08+miss*0.02)
}

func nextInterval(prevDays, repetitions int, ease float64) int {
	switch {
	case repetitions <= 1:
		return minIntervalDays
	case repetitions == 2:
		return secondInterval
	default:
		days := int(math.Round(float64(prevDays) * ease))
		if days < minIntervalDays {
			return minIntervalDays
		}
		return days
	}
}

func clampEase(ease float64) float64 {
	if ease < models.MinEaseFactor {
		return models.MinEaseFactor
	}
	return ease
}
