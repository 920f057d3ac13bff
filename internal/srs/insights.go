package srs

import (
	"fmt"
	"sort"
	"time"

	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/models"
)

// DefaultSectionLimit is used when Classify is called with a zero limit.
const DefaultSectionLimit = 3

// Classify partitions cards into the three insight sections: most
// challenging, best known, and overdue. Each section is computed
// independently from the full input set, so a card may appear in more
// than one. Each section is truncated to limit entries (0 means the
// default of 3; negative is rejected).
func Classify(cards []models.Card, limit int, now time.Time) (*models.Insights, error) {
	if limit < 0 {
		return nil, errors.NewInvalidInputError("section limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultSectionLimit
	}

	ins := &models.Insights{
		Challenging: challengingCards(cards, limit),
		WellKnown:   wellKnownCards(cards, limit),
		NeedsReview: overdueCards(cards, limit, now),
	}
	ins.HasWeakCards = len(ins.Challenging) > 0
	ins.AllCaughtUp = len(ins.NeedsReview) == 0
	ins.Empty = len(cards) == 0
	return ins, nil
}

// challengingCards ranks reviewed cards by ease ascending, hardest first.
// Never-reviewed cards are excluded even when their ease factor is low:
// a default ease says nothing about difficulty until the card has been seen.
func challengingCards(cards []models.Card, limit int) []models.InsightCard {
	var eligible []models.Card
	for _, c := range cards {
		if c.LastReviewedAt != nil {
			eligible = append(eligible, c)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.EaseFactor != b.EaseFactor {
			return a.EaseFactor < b.EaseFactor
		}
		if !a.LastReviewedAt.Equal(*b.LastReviewedAt) {
			return a.LastReviewedAt.After(*b.LastReviewedAt)
		}
		return a.ID < b.ID
	})

	out := make([]models.InsightCard, 0, limit)
	for _, c := range truncate(eligible, limit) {
		out = append(out, models.InsightCard{
			Card:  c,
			Label: fmt.Sprintf("ease %.2f", c.EaseFactor),
		})
	}
	return out
}

// wellKnownCards ranks all cards by interval descending, longest
// retention first.
func wellKnownCards(cards []models.Card, limit int) []models.InsightCard {
	ranked := make([]models.Card, len(cards))
	copy(ranked, cards)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.IntervalDays != b.IntervalDays {
			return a.IntervalDays > b.IntervalDays
		}
		if a.EaseFactor != b.EaseFactor {
			return a.EaseFactor > b.EaseFactor
		}
		return a.ID < b.ID
	})

	out := make([]models.InsightCard, 0, limit)
	for _, c := range truncate(ranked, limit) {
		out = append(out, models.InsightCard{
			Card:  c,
			Label: intervalLabel(c.IntervalDays),
		})
	}
	return out
}

// overdueCards ranks cards whose due date is strictly in the past by
// whole days overdue, most overdue first.
func overdueCards(cards []models.Card, limit int, now time.Time) []models.InsightCard {
	type overdue struct {
		card models.Card
		days int
	}
	var eligible []overdue
	for _, c := range cards {
		if c.NextReviewAt == nil || !c.NextReviewAt.Before(now) {
			continue
		}
		eligible = append(eligible, overdue{
			card: c,
			days: int(now.Sub(*c.NextReviewAt).Hours() / 24),
		})
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.days != b.days {
			return a.days > b.days
		}
		if !a.card.NextReviewAt.Equal(*b.card.NextReviewAt) {
			return a.card.NextReviewAt.Before(*b.card.NextReviewAt)
		}
		return a.card.ID < b.card.ID
	})

	out := make([]models.InsightCard, 0, limit)
	for _, o := range truncate(eligible, limit) {
		out = append(out, models.InsightCard{
			Card:  o.card,
			Label: fmt.Sprintf("%dd", o.days),
		})
	}
	return out
}

// intervalLabel names an interval in the largest whole unit that divides
// it evenly: months (30 days), then weeks, then a plain day count. An
// unscheduled card (interval 0) reads as "New".
func intervalLabel(days int) string {
	switch {
	case days == 0:
		return "New"
	case days%30 == 0:
		return pluralize(days/30, "month")
	case days%7 == 0:
		return pluralize(days/7, "week")
	default:
		return pluralize(days, "day")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func truncate[T any](s []T, limit int) []T {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
