package services

import (
	"context"

	"github.com/tvaleev/studypath/internal/clock"
	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository"
	"github.com/tvaleev/studypath/internal/srs"
)

// InsightService produces the review forecast and the insight panels.
// The heavy lifting lives in the pure srs package; this layer loads the
// card set and injects the wall clock.
type InsightService interface {
	GetForecast(ctx context.Context, days int) (*models.Forecast, error)
	GetInsights(ctx context.Context, limit int) (*models.Insights, error)
}

type insightService struct {
	cards repository.CardRepository
	clk   clock.Clock
}

// NewInsightService creates a new InsightService
func NewInsightService(cards repository.CardRepository, clk clock.Clock) InsightService {
	return &insightService{cards: cards, clk: clk}
}

func (s *insightService) GetForecast(ctx context.Context, days int) (*models.Forecast, error) {
	log := logger.FromContext(ctx)
	log.Debug("building forecast: days=%d", days)

	cards, err := s.cards.List(ctx, models.CardFilter{})
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return srs.BuildForecast(cards, days, s.clk.Now())
}

func (s *insightService) GetInsights(ctx context.Context, limit int) (*models.Insights, error) {
	log := logger.FromContext(ctx)
	log.Debug("classifying cards: limit=%d", limit)

	cards, err := s.cards.List(ctx, models.CardFilter{})
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return srs.Classify(cards, limit, s.clk.Now())
}
