// Operasi playlist milik user. Penambahan item duplikat BUKAN error:
// unique violation dari Postgres dipetakan jadi status "sudah ada",
// mengikuti perilaku insert-or-report pada toggle favorit.
package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fikrislam_backend/internals/features/engagement/playlists/model"
)

var (
	ErrPlaylistNotFound    = errors.New("playlist tidak ditemukan")
	ErrNotPlaylistOwner    = errors.New("bukan pemilik playlist")
	ErrItemNotFound        = errors.New("item tidak ada di playlist")
	ErrContentNotInCatalog = errors.New("konten tidak tersedia di katalog")
)

const pgUniqueViolation = "23505"

type PlaylistRepo interface {
	FindByID(id uuid.UUID) (*model.PlaylistModel, error)
	Create(p *model.PlaylistModel) error
	UpdateMeta(id uuid.UUID, name string, description *string) error
	Delete(id uuid.UUID) error

	ContentPublished(contentID uuid.UUID) (bool, error)
	NextPosition(playlistID uuid.UUID) (int, error)
	InsertItem(item *model.PlaylistItemModel) error
	RemoveItem(playlistID, contentID uuid.UUID) (int64, error)
}

type PlaylistService struct {
	Repo PlaylistRepo
}

func NewPlaylistService(repo PlaylistRepo) *PlaylistService {
	return &PlaylistService{Repo: repo}
}

func (s *PlaylistService) Create(userID uuid.UUID, name string, description *string) (*model.PlaylistModel, error) {
	p := &model.PlaylistModel{
		PlaylistUserID:      userID,
		PlaylistName:        name,
		PlaylistDescription: description,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistService) Update(id, userID uuid.UUID, name string, description *string) (*model.PlaylistModel, error) {
	if _, err := s.ownedPlaylist(id, userID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateMeta(id, name, description); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *PlaylistService) Delete(id, userID uuid.UUID) error {
	if _, err := s.ownedPlaylist(id, userID); err != nil {
		return err
	}
	// playlist_items ikut terhapus via FK ON DELETE CASCADE
	return s.Repo.Delete(id)
}

// AddItem mengembalikan added=false utk duplikat (bukan error).
func (s *PlaylistService) AddItem(playlistID, userID, contentID uuid.UUID) (added bool, err error) {
	if _, err := s.ownedPlaylist(playlistID, userID); err != nil {
		return false, err
	}

	published, err := s.Repo.ContentPublished(contentID)
	if err != nil {
		return false, err
	}
	if !published {
		return false, ErrContentNotInCatalog
	}

	pos, err := s.Repo.NextPosition(playlistID)
	if err != nil {
		return false, err
	}
	err = s.Repo.InsertItem(&model.PlaylistItemModel{
		PlaylistItemPlaylistID: playlistID,
		PlaylistItemContentID:  contentID,
		PlaylistItemPosition:   pos,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *PlaylistService) RemoveItem(playlistID, userID, contentID uuid.UUID) error {
	if _, err := s.ownedPlaylist(playlistID, userID); err != nil {
		return err
	}
	n, err := s.Repo.RemoveItem(playlistID, contentID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *PlaylistService) ownedPlaylist(id, userID uuid.UUID) (*model.PlaylistModel, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrPlaylistNotFound
	}
	if p.PlaylistUserID != userID {
		return nil, ErrNotPlaylistOwner
	}
	return p, nil
}
