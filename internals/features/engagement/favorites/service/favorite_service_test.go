package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFavoriteRepo struct {
	mock.Mock
}

func (m *mockFavoriteRepo) ContentPublished(contentID uuid.UUID) (bool, error) {
	args := m.Called(contentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) Exists(userID, contentID uuid.UUID) (bool, error) {
	args := m.Called(userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) Insert(userID, contentID uuid.UUID) error {
	return m.Called(userID, contentID).Error(0)
}

func (m *mockFavoriteRepo) Remove(userID, contentID uuid.UUID) error {
	return m.Called(userID, contentID).Error(0)
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	repo := new(mockFavoriteRepo)
	svc := NewFavoriteService(repo)
	userID, contentID := uuid.New(), uuid.New()

	repo.On("ContentPublished", contentID).Return(true, nil)
	repo.On("Exists", userID, contentID).Return(false, nil)
	repo.On("Insert", userID, contentID).Return(nil)

	favorited, err := svc.Toggle(userID, contentID)

	assert.NoError(t, err)
	assert.True(t, favorited)
	repo.AssertExpectations(t)
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	repo := new(mockFavoriteRepo)
	svc := NewFavoriteService(repo)
	userID, contentID := uuid.New(), uuid.New()

	repo.On("ContentPublished", contentID).Return(true, nil)
	repo.On("Exists", userID, contentID).Return(true, nil)
	repo.On("Remove", userID, contentID).Return(nil)

	favorited, err := svc.Toggle(userID, contentID)

	assert.NoError(t, err)
	assert.False(t, favorited)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestToggleRejectsUnpublishedContent(t *testing.T) {
	repo := new(mockFavoriteRepo)
	svc := NewFavoriteService(repo)
	userID, contentID := uuid.New(), uuid.New()

	repo.On("ContentPublished", contentID).Return(false, nil)

	_, err := svc.Toggle(userID, contentID)

	assert.ErrorIs(t, err, ErrContentNotAvailable)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}
