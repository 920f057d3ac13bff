package sqlite

import (
	"context"
	"database/sql"

	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review models.ReviewHistory) error {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("inserting review history: card_id=%s, quality=%d", review.CardID, review.Quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (card_id, quality, reviewed_at)
VALUES (?, ?, ?)
`, review.CardID, review.Quality, review.ReviewedAt)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
	}
	return err
}

func (r *reviewRepository) ListByCard(ctx context.Context, cardID string) ([]models.ReviewHistory, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("listing review history: card_id=%s", cardID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, card_id, quality, reviewed_at
FROM review_history
WHERE card_id = ?
ORDER BY reviewed_at ASC, id ASC
`, cardID)
	if err != nil {
		log.Error("failed to query review history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var reviews []models.ReviewHistory
	for rows.Next() {
		var h models.ReviewHistory
		if err := rows.Scan(&h.ID, &h.CardID, &h.Quality, &h.ReviewedAt); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		reviews = append(reviews, h)
	}
	return reviews, rows.Err()
}
