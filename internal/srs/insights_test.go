package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/srs"
)

var classifyNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func reviewedCard(id string, ease float64, interval int, reviewedAgo, dueIn time.Duration) models.Card {
	reviewed := classifyNow.Add(-reviewedAgo)
	due := classifyNow.Add(dueIn)
	return models.Card{
		ID:             id,
		SourceType:     models.SourceTypeGlossaryTerm,
		EaseFactor:     ease,
		IntervalDays:   interval,
		Repetitions:    1,
		LastReviewedAt: &reviewed,
		NextReviewAt:   &due,
	}
}

func newCard(id string, ease float64) models.Card {
	return models.Card{ID: id, SourceType: models.SourceTypeMilestone, EaseFactor: ease}
}

func TestClassify_ChallengingOrdering(t *testing.T) {
	cards := []models.Card{
		reviewedCard("easy", 2.8, 30, time.Hour, 10*24*time.Hour),
		reviewedCard("hard", 1.4, 1, 2*time.Hour, 24*time.Hour),
		reviewedCard("medium", 2.1, 6, 3*time.Hour, 6*24*time.Hour),
	}

	ins, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.Challenging, 3)
	assert.Equal(t, "hard", ins.Challenging[0].Card.ID)
	assert.Equal(t, "medium", ins.Challenging[1].Card.ID)
	assert.Equal(t, "easy", ins.Challenging[2].Card.ID)
	assert.Equal(t, "ease 1.40", ins.Challenging[0].Label)
	assert.True(t, ins.HasWeakCards)
}

func TestClassify_ChallengingExcludesNeverReviewed(t *testing.T) {
	cards := []models.Card{
		reviewedCard("reviewed", 1.5, 6, time.Hour, 24*time.Hour),
		newCard("unreviewed", 1.3),
	}

	ins, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.Challenging, 1)
	assert.Equal(t, "reviewed", ins.Challenging[0].Card.ID)
}

func TestClassify_ChallengingTieBreak(t *testing.T) {
	// Same ease: the most recently reviewed card ranks first.
	cards := []models.Card{
		reviewedCard("stale", 1.5, 6, 48*time.Hour, 24*time.Hour),
		reviewedCard("fresh", 1.5, 6, time.Hour, 24*time.Hour),
	}

	ins, err := srs.Classify(cards, 2, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.Challenging, 2)
	assert.Equal(t, "fresh", ins.Challenging[0].Card.ID)
	assert.Equal(t, "stale", ins.Challenging[1].Card.ID)
}

func TestClassify_WellKnownOrderingAndLabels(t *testing.T) {
	cards := []models.Card{
		reviewedCard("week", 2.5, 7, time.Hour, 7*24*time.Hour),
		reviewedCard("month", 2.7, 30, time.Hour, 30*24*time.Hour),
		reviewedCard("day", 2.4, 1, time.Hour, 24*time.Hour),
		newCard("brand-new", 2.5),
	}

	ins, err := srs.Classify(cards, 4, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.WellKnown, 4)
	assert.Equal(t, "month", ins.WellKnown[0].Card.ID)
	assert.Equal(t, "1 month", ins.WellKnown[0].Label)
	assert.Equal(t, "week", ins.WellKnown[1].Card.ID)
	assert.Equal(t, "1 week", ins.WellKnown[1].Label)
	assert.Equal(t, "day", ins.WellKnown[2].Card.ID)
	assert.Equal(t, "1 day", ins.WellKnown[2].Label)
	assert.Equal(t, "brand-new", ins.WellKnown[3].Card.ID)
	assert.Equal(t, "New", ins.WellKnown[3].Label)
}

func TestClassify_IntervalLabels(t *testing.T) {
	tests := []struct {
		days     int
		expected string
	}{
		{days: 0, expected: "New"},
		{days: 1, expected: "1 day"},
		{days: 5, expected: "5 days"},
		{days: 7, expected: "1 week"},
		{days: 10, expected: "10 days"},
		{days: 14, expected: "2 weeks"},
		{days: 30, expected: "1 month"},
		{days: 60, expected: "2 months"},
	}

	for _, tt := range tests {
		card := reviewedCard("c", 2.5, tt.days, time.Hour, 24*time.Hour)
		ins, err := srs.Classify([]models.Card{card}, 1, classifyNow)
		require.NoError(t, err)
		require.Len(t, ins.WellKnown, 1)
		assert.Equal(t, tt.expected, ins.WellKnown[0].Label, "interval %d", tt.days)
	}
}

func TestClassify_OverdueOrdering(t *testing.T) {
	cards := []models.Card{
		reviewedCard("two-days", 2.5, 6, 3*24*time.Hour, -2*24*time.Hour),
		reviewedCard("five-days", 2.5, 6, 6*24*time.Hour, -5*24*time.Hour),
		reviewedCard("future", 2.5, 6, time.Hour, 24*time.Hour),
	}

	ins, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.NeedsReview, 2)
	assert.Equal(t, "five-days", ins.NeedsReview[0].Card.ID)
	assert.Equal(t, "5d", ins.NeedsReview[0].Label)
	assert.Equal(t, "two-days", ins.NeedsReview[1].Card.ID)
	assert.Equal(t, "2d", ins.NeedsReview[1].Label)
	assert.False(t, ins.AllCaughtUp)
}

func TestClassify_AllCaughtUp(t *testing.T) {
	cards := []models.Card{
		reviewedCard("future", 2.5, 6, time.Hour, 24*time.Hour),
	}

	ins, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	assert.Empty(t, ins.NeedsReview)
	assert.True(t, ins.AllCaughtUp)
	assert.False(t, ins.Empty, "caught up is not the same as no cards at all")
}

func TestClassify_MultiMembership(t *testing.T) {
	// A hard card that is also overdue must show in both sections.
	cards := []models.Card{
		reviewedCard("struggling", 1.3, 1, 6*24*time.Hour, -5*24*time.Hour),
	}

	ins, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	require.Len(t, ins.Challenging, 1)
	require.Len(t, ins.NeedsReview, 1)
	assert.Equal(t, "struggling", ins.Challenging[0].Card.ID)
	assert.Equal(t, "struggling", ins.NeedsReview[0].Card.ID)
}

func TestClassify_SectionLimit(t *testing.T) {
	var cards []models.Card
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		cards = append(cards, reviewedCard(id, 2.0, 6, time.Hour, -24*time.Hour))
	}

	ins, err := srs.Classify(cards, 2, classifyNow)
	require.NoError(t, err)

	assert.Len(t, ins.Challenging, 2)
	assert.Len(t, ins.WellKnown, 2)
	assert.Len(t, ins.NeedsReview, 2)
}

func TestClassify_DefaultLimit(t *testing.T) {
	var cards []models.Card
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		cards = append(cards, reviewedCard(id, 2.0, 6, time.Hour, 24*time.Hour))
	}

	ins, err := srs.Classify(cards, 0, classifyNow)
	require.NoError(t, err)
	assert.Len(t, ins.Challenging, srs.DefaultSectionLimit)
}

func TestClassify_NegativeLimit(t *testing.T) {
	_, err := srs.Classify(nil, -1, classifyNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
}

func TestClassify_EmptyInput(t *testing.T) {
	ins, err := srs.Classify(nil, 3, classifyNow)
	require.NoError(t, err)

	assert.True(t, ins.Empty)
	assert.True(t, ins.AllCaughtUp)
	assert.False(t, ins.HasWeakCards)
	assert.Empty(t, ins.Challenging)
	assert.Empty(t, ins.WellKnown)
	assert.Empty(t, ins.NeedsReview)
}

func TestClassify_Deterministic(t *testing.T) {
	cards := []models.Card{
		reviewedCard("a", 1.9, 6, time.Hour, -24*time.Hour),
		reviewedCard("b", 1.9, 6, time.Hour, -24*time.Hour),
		reviewedCard("c", 2.4, 14, 2*time.Hour, 24*time.Hour),
		newCard("d", 2.5),
	}

	first, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)
	second, err := srs.Classify(cards, 3, classifyNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
