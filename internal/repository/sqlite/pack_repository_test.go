package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvaleev/studypath/internal/models"
	"github.com/tvaleev/studypath/internal/repository/sqlite"
	"github.com/tvaleev/studypath/internal/testutil"
)

func TestPackRepository_InsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewPackRepository(db)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, models.Pack{ID: "p2", Name: "Glossary", CreatedAt: created}))
	require.NoError(t, repo.Insert(ctx, models.Pack{ID: "p1", Name: "Basics", Description: "starter pack", CreatedAt: created}))

	packs, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, packs, 2)
	assert.Equal(t, "Basics", packs[0].Name, "packs should list alphabetically")
	assert.Equal(t, "starter pack", packs[0].Description)
	assert.Equal(t, "Glossary", packs[1].Name)
}

func TestPackRepository_CardCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	packRepo := sqlite.NewPackRepository(db)
	cardRepo := sqlite.NewCardRepository(db)
	ctx := context.Background()

	require.NoError(t, packRepo.Insert(ctx, models.Pack{ID: "p1", Name: "Basics", CreatedAt: time.Now()}))
	require.NoError(t, cardRepo.Insert(ctx, testCard("c1", nil)))
	require.NoError(t, cardRepo.Insert(ctx, testCard("c2", nil)))
	require.NoError(t, packRepo.AddCard(ctx, "p1", "c1"))
	require.NoError(t, packRepo.AddCard(ctx, "p1", "c2"))

	// Duplicate membership is a no-op.
	require.NoError(t, packRepo.AddCard(ctx, "p1", "c1"))

	packs, err := packRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, 2, packs[0].CardCount)
}

func TestReviewRepository_InsertAndListByCard(t *testing.T) {
	db := testutil.NewTestDB(t)
	cardRepo := sqlite.NewCardRepository(db)
	reviewRepo := sqlite.NewReviewRepository(db)
	ctx := context.Background()

	require.NoError(t, cardRepo.Insert(ctx, testCard("c1", nil)))

	first := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, reviewRepo.Insert(ctx, models.ReviewHistory{CardID: "c1", Quality: 2, ReviewedAt: first}))
	require.NoError(t, reviewRepo.Insert(ctx, models.ReviewHistory{CardID: "c1", Quality: 5, ReviewedAt: first.Add(24 * time.Hour)}))

	reviews, err := reviewRepo.ListByCard(ctx, "c1")
	require.NoError(t, err)

	require.Len(t, reviews, 2)
	assert.Equal(t, 2, reviews[0].Quality, "reviews should list oldest first")
	assert.Equal(t, 5, reviews[1].Quality)
}

func TestReviewRepository_CascadeDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	cardRepo := sqlite.NewCardRepository(db)
	reviewRepo := sqlite.NewReviewRepository(db)
	ctx := context.Background()

	require.NoError(t, cardRepo.Insert(ctx, testCard("c1", nil)))
	require.NoError(t, reviewRepo.Insert(ctx, models.ReviewHistory{CardID: "c1", Quality: 4, ReviewedAt: time.Now()}))
	require.NoError(t, cardRepo.Delete(ctx, "c1"))

	reviews, err := reviewRepo.ListByCard(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
