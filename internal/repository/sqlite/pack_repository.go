package sqlite

import (
	"context"
	"database/sql"

	"github.com/tvaleev/studypath/internal/logger"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository"
)

type packRepository struct {
	db *sql.DB
}

// NewPackRepository creates a new PackRepository implementation
func NewPackRepository(db *sql.DB) repository.PackRepository {
	return &packRepository{db: db}
}

func (r *packRepository) Insert(ctx context.Context, p models.Pack) error {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("inserting pack: id=%s, name=%s", p.ID, p.Name)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO packs (id, name, description, created_at)
VALUES (?, ?, ?, ?)
`, p.ID, p.Name, p.Description, p.CreatedAt)
	if err != nil {
		log.Error("failed to insert pack: %v", err)
	}
	return err
}

func (r *packRepository) List(ctx context.Context) ([]models.Pack, error) {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("listing packs")

	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.name, p.description, p.created_at, COUNT(pc.card_id) AS card_count
FROM packs p
LEFT JOIN pack_cards pc ON pc.pack_id = p.id
GROUP BY p.id
ORDER BY p.name ASC
`)
	if err != nil {
		log.Error("failed to query packs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var packs []models.Pack
	for rows.Next() {
		var p models.Pack
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.CardCount); err != nil {
			log.Error("failed to scan pack row: %v", err)
			return nil, err
		}
		packs = append(packs, p)
	}
	log.Debug("found %d packs", len(packs))
	return packs, rows.Err()
}

func (r *packRepository) AddCard(ctx context.Context, packID, cardID string) error {
	log := logger.FromContext(ctx).WithPrefix("pack_repo")
	log.Debug("adding card to pack: pack_id=%s, card_id=%s", packID, cardID)

	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO pack_cards (pack_id, card_id) VALUES (?, ?)
`, packID, cardID)
	if err != nil {
		log.Error("failed to add card to pack: %v", err)
	}
	return err
}
