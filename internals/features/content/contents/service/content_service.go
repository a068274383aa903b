// internals/features/content/contents/service/content_service.go
//
// Mesin status konten: pending → approved | rejected, resubmit kembali ke
// pending. Setiap transisi dieksekusi sebagai SATU update atomik; update
// bersamaan oleh dua admin diselesaikan last-write-wins (tanpa optimistic
// lock — lihat DESIGN.md).
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fikrislam_backend/internals/features/content/contents/model"
)

var (
	ErrContentNotFound = errors.New("konten tidak ditemukan")
	ErrNotOwner        = errors.New("bukan pemilik konten")
	ErrContentLocked   = errors.New("konten sudah dipublikasikan dan terkunci")
	ErrTypeImmutable   = errors.New("tipe konten tidak bisa diubah")
)

// ContentRepo: akses baris konten; diimplementasikan GORM (gorm_repo.go)
// dan mock pada unit test.
type ContentRepo interface {
	FindByID(id uuid.UUID) (*model.ContentModel, error)
	Create(m *model.ContentModel) error
	// UpdateFields: satu UPDATE atomik utk seluruh field transisi
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

type ContentService struct {
	Repo ContentRepo
	now  func() time.Time
}

func NewContentService(repo ContentRepo) *ContentService {
	return &ContentService{Repo: repo, now: time.Now}
}

/* ==========================
   Contributor ops
========================== */

// Submit: konten baru selalu masuk pending
func (s *ContentService) Submit(m *model.ContentModel) error {
	m.ContentStatus = model.StatusPending
	m.ContentAdminNotes = nil
	m.ContentPublishedAt = nil
	return s.Repo.Create(m)
}

// EditMeta: edit metadata oleh pemilik. Hanya pending/rejected.
// Edit pada item rejected = resubmit: status kembali pending dan
// admin_notes dibersihkan, apa pun isinya sebelumnya.
func (s *ContentService) EditMeta(id, ownerID uuid.UUID, title string, description, author, language *string, tags []string) (*model.ContentModel, error) {
	cur, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrContentNotFound
	}
	if cur.ContentContributorID != ownerID {
		return nil, ErrNotOwner
	}
	if cur.ContentStatus == model.StatusApproved {
		return nil, ErrContentLocked
	}

	fields := map[string]interface{}{
		"content_title":       title,
		"content_description": description,
		"content_author":      author,
		"content_language":    language,
		"content_tags":        pq.StringArray(tags),
	}
	if cur.ContentStatus == model.StatusRejected {
		fields["content_status"] = model.StatusPending
		fields["content_admin_notes"] = nil
		// published_at tetap: belum pernah approve ⇒ tetap nil
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// DeleteOwn: pemilik hanya boleh hapus pending/rejected;
// item approved terkunci utk kontributor.
func (s *ContentService) DeleteOwn(id, ownerID uuid.UUID) (*model.ContentModel, error) {
	cur, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrContentNotFound
	}
	if cur.ContentContributorID != ownerID {
		return nil, ErrNotOwner
	}
	if cur.ContentStatus == model.StatusApproved {
		return nil, ErrContentLocked
	}
	return cur, s.Repo.Delete(id)
}

/* ==========================
   Admin ops
========================== */

// Approve: set approved + published_at (sekali saja, pada approve pertama).
// Approve ulang setelah reject TIDAK menggeser published_at.
func (s *ContentService) Approve(id uuid.UUID) (*model.ContentModel, error) {
	cur, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrContentNotFound
	}

	fields := map[string]interface{}{
		"content_status":      model.StatusApproved,
		"content_admin_notes": nil,
	}
	if cur.ContentPublishedAt == nil {
		fields["content_published_at"] = s.now()
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Reject: catat feedback admin (boleh kosong tapi tetap tercatat);
// published_at TIDAK dihapus — jejak approve sebelumnya dipertahankan.
func (s *ContentService) Reject(id uuid.UUID, adminNotes string) (*model.ContentModel, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, ErrContentNotFound
	}

	fields := map[string]interface{}{
		"content_status":      model.StatusRejected,
		"content_admin_notes": adminNotes,
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// SetPending: kembalikan konten ke antrian review dari status apa pun
// (mis. salah tolak / salah approve). Catatan admin dibersihkan;
// published_at TIDAK disentuh — jejak publikasi pertama dipertahankan.
func (s *ContentService) SetPending(id uuid.UUID) (*model.ContentModel, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, ErrContentNotFound
	}

	fields := map[string]interface{}{
		"content_status":      model.StatusPending,
		"content_admin_notes": nil,
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// AdminDelete: admin boleh hapus dari status apa pun
func (s *ContentService) AdminDelete(id uuid.UUID) (*model.ContentModel, error) {
	cur, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrContentNotFound
	}
	return cur, s.Repo.Delete(id)
}
