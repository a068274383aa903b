package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fikrislam_backend/internals/features/engagement/playlists/model"
)

type mockPlaylistRepo struct {
	mock.Mock
}

func (m *mockPlaylistRepo) FindByID(id uuid.UUID) (*model.PlaylistModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaylistModel), args.Error(1)
}

func (m *mockPlaylistRepo) Create(p *model.PlaylistModel) error {
	return m.Called(p).Error(0)
}

func (m *mockPlaylistRepo) UpdateMeta(id uuid.UUID, name string, description *string) error {
	return m.Called(id, name, description).Error(0)
}

func (m *mockPlaylistRepo) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *mockPlaylistRepo) ContentPublished(contentID uuid.UUID) (bool, error) {
	args := m.Called(contentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlaylistRepo) NextPosition(playlistID uuid.UUID) (int, error) {
	args := m.Called(playlistID)
	return args.Int(0), args.Error(1)
}

func (m *mockPlaylistRepo) InsertItem(item *model.PlaylistItemModel) error {
	return m.Called(item).Error(0)
}

func (m *mockPlaylistRepo) RemoveItem(playlistID, contentID uuid.UUID) (int64, error) {
	args := m.Called(playlistID, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func ownedPlaylistRow(owner uuid.UUID) *model.PlaylistModel {
	return &model.PlaylistModel{
		PlaylistID:     uuid.New(),
		PlaylistUserID: owner,
		PlaylistName:   "Kajian Ramadan",
	}
}

func TestAddItemAppendsAtNextPosition(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	owner := uuid.New()
	p := ownedPlaylistRow(owner)
	contentID := uuid.New()

	repo.On("FindByID", p.PlaylistID).Return(p, nil)
	repo.On("ContentPublished", contentID).Return(true, nil)
	repo.On("NextPosition", p.PlaylistID).Return(4, nil)
	repo.On("InsertItem", mock.MatchedBy(func(item *model.PlaylistItemModel) bool {
		return item.PlaylistItemPlaylistID == p.PlaylistID &&
			item.PlaylistItemContentID == contentID &&
			item.PlaylistItemPosition == 4
	})).Return(nil)

	added, err := svc.AddItem(p.PlaylistID, owner, contentID)

	assert.NoError(t, err)
	assert.True(t, added)
	repo.AssertExpectations(t)
}

func TestAddItemDuplicateIsReportedNotError(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	owner := uuid.New()
	p := ownedPlaylistRow(owner)
	contentID := uuid.New()

	repo.On("FindByID", p.PlaylistID).Return(p, nil)
	repo.On("ContentPublished", contentID).Return(true, nil)
	repo.On("NextPosition", p.PlaylistID).Return(2, nil)
	repo.On("InsertItem", mock.Anything).Return(&pq.Error{Code: "23505"})

	added, err := svc.AddItem(p.PlaylistID, owner, contentID)

	assert.NoError(t, err)
	assert.False(t, added)
}

func TestAddItemRejectsForeignPlaylist(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	p := ownedPlaylistRow(uuid.New())
	repo.On("FindByID", p.PlaylistID).Return(p, nil)

	_, err := svc.AddItem(p.PlaylistID, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotPlaylistOwner)
	repo.AssertNotCalled(t, "InsertItem", mock.Anything)
}

func TestAddItemRejectsUnpublishedContent(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	owner := uuid.New()
	p := ownedPlaylistRow(owner)
	contentID := uuid.New()

	repo.On("FindByID", p.PlaylistID).Return(p, nil)
	repo.On("ContentPublished", contentID).Return(false, nil)

	_, err := svc.AddItem(p.PlaylistID, owner, contentID)

	assert.ErrorIs(t, err, ErrContentNotInCatalog)
}

func TestRemoveItemMissingRowIsNotFound(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	owner := uuid.New()
	p := ownedPlaylistRow(owner)
	contentID := uuid.New()

	repo.On("FindByID", p.PlaylistID).Return(p, nil)
	repo.On("RemoveItem", p.PlaylistID, contentID).Return(int64(0), nil)

	err := svc.RemoveItem(p.PlaylistID, owner, contentID)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeletePlaylistRequiresOwner(t *testing.T) {
	repo := new(mockPlaylistRepo)
	svc := NewPlaylistService(repo)

	p := ownedPlaylistRow(uuid.New())
	repo.On("FindByID", p.PlaylistID).Return(p, nil)

	err := svc.Delete(p.PlaylistID, uuid.New())

	assert.ErrorIs(t, err, ErrNotPlaylistOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
