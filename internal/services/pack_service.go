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
)

// PackService handles grouping-collection business logic
type PackService interface {
	CreatePack(ctx context.Context, name, description string) (*models.Pack, error)
	ListPacks(ctx context.Context) ([]models.Pack, error)
	AddCardToPack(ctx context.Context, packID, cardID string) error
}

type packService struct {
	packs repository.PackRepository
	cards repository.CardRepository
	clk   clock.Clock
}

// NewPackService creates a new PackService
func NewPackService(packs repository.PackRepository, cards repository.CardRepository, clk clock.Clock) PackService {
	return &packService{packs: packs, cards: cards, clk: clk}
}

func (s *packService) CreatePack(ctx context.Context, name, description string) (*models.Pack, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	pack := models.Pack{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.clk.Now(),
	}

	if err := s.packs.Insert(ctx, pack); err != nil {
		log.Error("failed to insert pack: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("pack created: id=%s, name=%s", pack.ID, pack.Name)
	return &pack, nil
}

func (s *packService) ListPacks(ctx context.Context) ([]models.Pack, error) {
	log := logger.FromContext(ctx)

	packs, err := s.packs.List(ctx)
	if err != nil {
		log.Error("failed to list packs: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return packs, nil
}

func (s *packService) AddCardToPack(ctx context.Context, packID, cardID string) error {
	log := logger.FromContext(ctx)
	log.Debug("adding card to pack: pack_id=%s, card_id=%s", packID, cardID)

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return errors.NewInternalError(err)
	}
	if card == nil {
		return errors.NewNotFoundError("card", cardID)
	}

	if err := s.packs.AddCard(ctx, packID, cardID); err != nil {
		log.Error("failed to add card to pack: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
