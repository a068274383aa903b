// Toggle favorit: insert kalau belum ada, hapus kalau sudah ada.
// Dipanggil dua kali berturut-turut ⇒ kembali ke keadaan semula.
package service

import (
	"errors"

	"github.com/google/uuid"
)

var ErrContentNotAvailable = errors.New("konten tidak tersedia utk difavoritkan")

type FavoriteRepo interface {
	// ContentPublished: hanya konten approved yang bisa difavoritkan
	ContentPublished(contentID uuid.UUID) (bool, error)
	Exists(userID, contentID uuid.UUID) (bool, error)
	Insert(userID, contentID uuid.UUID) error
	Remove(userID, contentID uuid.UUID) error
}

type FavoriteService struct {
	Repo FavoriteRepo
}

func NewFavoriteService(repo FavoriteRepo) *FavoriteService {
	return &FavoriteService{Repo: repo}
}

// Toggle mengembalikan keanggotaan SETELAH operasi:
// true = sekarang favorit, false = sekarang bukan.
func (s *FavoriteService) Toggle(userID, contentID uuid.UUID) (bool, error) {
	published, err := s.Repo.ContentPublished(contentID)
	if err != nil {
		return false, err
	}
	if !published {
		return false, ErrContentNotAvailable
	}

	exists, err := s.Repo.Exists(userID, contentID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, s.Repo.Remove(userID, contentID)
	}
	return true, s.Repo.Insert(userID, contentID)
}
