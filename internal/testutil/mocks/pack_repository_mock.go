package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tvaleev/studypath/internal/models"
)

// MockPackRepository is a mock implementation of repository.PackRepository
type MockPackRepository struct {
	mock.Mock
}

func (m *MockPackRepository) Insert(ctx context.Context, pack models.Pack) error {
	args := m.Called(ctx, pack)
	return args.Error(0)
}

func (m *MockPackRepository) List(ctx context.Context) ([]models.Pack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pack), args.Error(1)
}

func (m *MockPackRepository) AddCard(ctx context.Context, packID, cardID string) error {
	args := m.Called(ctx, packID, cardID)
	return args.Error(0)
}
