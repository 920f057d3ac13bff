package repository

import (
	"context"

	"github.com/tvaleev/studypath/internal/models"
)

// CardRepository handles flashcard data access
type CardRepository interface {
	Insert(ctx context.Context, card models.Card) error
	Get(ctx context.Context, id string) (*models.Card, error)
	Update(ctx context.Context, card models.Card) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
}

// PackRepository handles grouping-collection data access
type PackRepository interface {
	Insert(ctx context.Context, pack models.Pack) error
	List(ctx context.Context) ([]models.Pack, error)
	AddCard(ctx context.Context, packID, cardID string) error
}

// ReviewRepository handles review-history data access
type ReviewRepository interface {
	Insert(ctx context.Context, review models.ReviewHistory) error
	ListByCard(ctx context.Context, cardID string) ([]models.ReviewHistory, error)
}
