package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tvaleev/studypath/internal/clock"
	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/services"
	"github.com/tvaleev/studypath/internal/testutil/mocks"
)

func TestGetForecast_ProjectsCards(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	svc := services.NewInsightService(cards, clock.Fixed{T: serviceNow})

	tomorrow := serviceNow.AddDate(0, 0, 1)
	cards.On("List", mock.Anything, models.CardFilter{}).Return([]models.Card{
		{ID: "a", NextReviewAt: &serviceNow},
		{ID: "b", NextReviewAt: &tomorrow},
	}, nil)

	forecast, err := svc.GetForecast(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, forecast.Days, 7)
	assert.Equal(t, 1, forecast.Days[0].Count)
	assert.Equal(t, 1, forecast.Days[1].Count)
	assert.Equal(t, 2, forecast.TotalCount)
}

func TestGetForecast_InvalidDays(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	svc := services.NewInsightService(cards, clock.Fixed{T: serviceNow})

	cards.On("List", mock.Anything, models.CardFilter{}).Return([]models.Card{}, nil)

	_, err := svc.GetForecast(context.Background(), -1)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeInvalidInput, appErr.Code)
}

func TestGetForecast_RepositoryError(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	svc := services.NewInsightService(cards, clock.Fixed{T: serviceNow})

	cards.On("List", mock.Anything, models.CardFilter{}).Return(nil, assert.AnError)

	_, err := svc.GetForecast(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}

func TestGetInsights_ClassifiesCards(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	svc := services.NewInsightService(cards, clock.Fixed{T: serviceNow})

	reviewed := serviceNow.Add(-48 * time.Hour)
	overdue := serviceNow.Add(-24 * time.Hour)
	cards.On("List", mock.Anything, models.CardFilter{}).Return([]models.Card{
		{
			ID:             "hard-and-late",
			EaseFactor:     1.4,
			IntervalDays:   1,
			LastReviewedAt: &reviewed,
			NextReviewAt:   &overdue,
		},
	}, nil)

	insights, err := svc.GetInsights(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, insights.Challenging, 1)
	require.Len(t, insights.NeedsReview, 1)
	assert.True(t, insights.HasWeakCards)
	assert.False(t, insights.AllCaughtUp)
}

func TestGetInsights_EmptyCollection(t *testing.T) {
	cards := new(mocks.MockCardRepository)
	svc := services.NewInsightService(cards, clock.Fixed{T: serviceNow})

	cards.On("List", mock.Anything, models.CardFilter{}).Return([]models.Card{}, nil)

	insights, err := svc.GetInsights(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, insights.Empty)
}
