package models

import "time"

// Source types a card can point at.
const (
	SourceTypeMilestone    = "milestone"
	SourceTypeGlossaryTerm = "glossary_term"
)

// Scheduling defaults shared by the engine and the persistence layer.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

type Card struct {
	ID             string     `json:"id"`
	SourceType     string     `json:"source_type"`
	SourceID       string     `json:"source_id"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	NextReviewAt   *time.Time `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CardFilter struct {
	PackID     string
	SourceType string
	DueBefore  *time.Time
	Limit      int
}

type ReviewHistory struct {
	ID         int64     `json:"id"`
	CardID     string    `json:"card_id"`
	Quality    int       `json:"quality"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
