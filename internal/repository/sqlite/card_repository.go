package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Insert(ctx context.Context, c models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting card: id=%s, source=%s/%s", c.ID, c.SourceType, c.SourceID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO cards (id, source_type, source_id, ease_factor, interval_days, repetitions, next_review_at, last_reviewed_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.SourceType, c.SourceID, c.EaseFactor, c.IntervalDays, c.Repetitions, c.NextReviewAt, c.LastReviewedAt, c.CreatedAt)
	if err != nil {
		log.Error("failed to insert card: %v", err)
	}
	return err
}

func (r *cardRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("getting card: id=%s", id)

	var c models.Card
	err := r.db.QueryRowContext(ctx, `
SELECT id, source_type, source_id, ease_factor, interval_days, repetitions, next_review_at, last_reviewed_at, created_at
FROM cards
WHERE id = ?
`, id).Scan(&c.ID, &c.SourceType, &c.SourceID, &c.EaseFactor, &c.IntervalDays, &c.Repetitions, &c.NextReviewAt, &c.LastReviewedAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *cardRepository) Update(ctx context.Context, c models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating card: id=%s, interval=%d, ease=%.2f", c.ID, c.IntervalDays, c.EaseFactor)

	_, err := r.db.ExecContext(ctx, `
UPDATE cards
SET ease_factor = ?, interval_days = ?, repetitions = ?, next_review_at = ?, last_reviewed_at = ?
WHERE id = ?
`, c.EaseFactor, c.IntervalDays, c.Repetitions, c.NextReviewAt, c.LastReviewedAt, c.ID)
	if err != nil {
		log.Error("failed to update card: %v", err)
	}
	return err
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("deleting card: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete card: %v", err)
	}
	return err
}

func (r *cardRepository) List(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards: pack=%s, source_type=%s, limit=%d", filter.PackID, filter.SourceType, filter.Limit)

	query := sqlBuilder.
		Select("c.id", "c.source_type", "c.source_id", "c.ease_factor", "c.interval_days", "c.repetitions", "c.next_review_at", "c.last_reviewed_at", "c.created_at").
		From("cards c").
		OrderBy("c.created_at ASC", "c.id ASC")

	if filter.PackID != "" {
		query = query.
			Join("pack_cards pc ON pc.card_id = c.id").
			Where(squirrel.Eq{"pc.pack_id": filter.PackID})
	}
	if filter.SourceType != "" {
		query = query.Where(squirrel.Eq{"c.source_type": filter.SourceType})
	}
	if filter.DueBefore != nil {
		query = query.Where(squirrel.LtOrEq{"c.next_review_at": *filter.DueBefore})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build card query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.SourceType, &c.SourceID, &c.EaseFactor, &c.IntervalDays, &c.Repetitions, &c.NextReviewAt, &c.LastReviewedAt, &c.CreatedAt); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d cards", len(cards))
	return cards, rows.Err()
}
