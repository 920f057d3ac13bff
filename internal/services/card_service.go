package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/tvaleev/studypath/internal/clock"
	"github.com/tvaleev/studypath/internal/errors"
	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository"
	"github.com/tvaleev/studypath/internal/srs"
)

// CardService handles flashcard-related business logic
type CardService interface {
	CreateCard(ctx context.Context, sourceType, sourceID string) (*models.Card, error)
	GetCard(ctx context.Context, id string) (*models.Card, error)
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	GetDueCards(ctx context.Context, limit int) ([]models.Card, error)
	ReviewCard(ctx context.Context, id string, quality int) (*models.Card, error)
	GetReviewHistory(ctx context.Context, id string) ([]models.ReviewHistory, error)
	DeleteCard(ctx context.Context, id string) error
}

type cardService struct {
	cards   repository.CardRepository
	reviews repository.ReviewRepository
	clk     clock.Clock
	dueCap  int
}

// NewCardService creates a new CardService
func NewCardService(cards repository.CardRepository, reviews repository.ReviewRepository, clk clock.Clock, dueCap int) CardService {
	return &cardService{cards: cards, reviews: reviews, clk: clk, dueCap: dueCap}
}

func (s *cardService) CreateCard(ctx context.Context, sourceType, sourceID string) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating card: source=%s/%s", sourceType, sourceID)

	sourceType = strings.TrimSpace(sourceType)
	sourceID = strings.TrimSpace(sourceID)
	if sourceType == "" {
		return nil, errors.NewValidationError("source_type", "must not be empty")
	}
	if sourceID == "" {
		return nil, errors.NewValidationError("source_id", "must not be empty")
	}

	// A fresh card is due immediately: interval 0, next review now,
	// never reviewed.
	now := s.clk.Now()
	card := models.Card{
		ID:           uuid.NewString(),
		SourceType:   sourceType,
		SourceID:     sourceID,
		EaseFactor:   models.DefaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: &now,
		CreatedAt:    now,
	}

	if err := s.cards.Insert(ctx, card); err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("card created: id=%s", card.ID)
	return &card, nil
}

func (s *cardService) GetCard(ctx context.Context, id string) (*models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing cards: pack=%s, source_type=%s", filter.PackID, filter.SourceType)

	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) GetDueCards(ctx context.Context, limit int) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 || limit > s.dueCap {
		limit = s.dueCap
	}
	now := s.clk.Now()
	cards, err := s.cards.List(ctx, models.CardFilter{DueBefore: &now, Limit: limit})
	if err != nil {
		log.Error("failed to list due cards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("found %d due cards", len(cards))
	return cards, nil
}

func (s *cardService) ReviewCard(ctx context.Context, id string, quality int) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing card: id=%s, quality=%d", id, quality)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}

	now := s.clk.Now()
	updated, err := srs.Schedule(*card, quality, now)
	if err != nil {
		return nil, err
	}

	log.Debug("applied review, new interval=%d days, ease_factor=%.2f", updated.IntervalDays, updated.EaseFactor)

	if err := s.cards.Update(ctx, updated); err != nil {
		log.Error("failed to update card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Review history is an audit trail; a failure here must not undo the
	// review itself.
	history := models.ReviewHistory{CardID: card.ID, Quality: quality, ReviewedAt: now}
	if err := s.reviews.Insert(ctx, history); err != nil {
		log.Warn("failed to store review history: %v", err)
	}

	return &updated, nil
}

func (s *cardService) GetReviewHistory(ctx context.Context, id string) ([]models.ReviewHistory, error) {
	log := logger.FromContext(ctx)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}

	reviews, err := s.reviews.ListByCard(ctx, id)
	if err != nil {
		log.Error("failed to list review history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return reviews, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting card: id=%s", id)

	card, err := s.cards.Get(ctx, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return errors.NewInternalError(err)
	}
	if card == nil {
		return errors.NewNotFoundError("card", id)
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
