package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fikrislam_backend/internals/features/content/contents/model"
)

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) FindByID(id uuid.UUID) (*model.ContentModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentModel), args.Error(1)
}

func (m *mockContentRepo) Create(c *model.ContentModel) error {
	return m.Called(c).Error(0)
}

func (m *mockContentRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockContentRepo) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func newTestService(repo *mockContentRepo, at time.Time) *ContentService {
	svc := NewContentService(repo)
	svc.now = func() time.Time { return at }
	return svc
}

func pendingContent(owner uuid.UUID) *model.ContentModel {
	return &model.ContentModel{
		ContentID:            uuid.New(),
		ContentTitle:         "Tafsir Juz Amma",
		ContentType:          "book",
		ContentFileURL:       "contributors/x/book/tafsir.pdf",
		ContentStatus:        model.StatusPending,
		ContentContributorID: owner,
	}
}

func TestSubmitAlwaysStartsPending(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	notes := "sisa catatan"
	ts := time.Now()
	m := pendingContent(uuid.New())
	m.ContentStatus = model.StatusApproved
	m.ContentAdminNotes = &notes
	m.ContentPublishedAt = &ts

	repo.On("Create", m).Return(nil)

	err := svc.Submit(m)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, m.ContentStatus)
	assert.Nil(t, m.ContentAdminNotes)
	assert.Nil(t, m.ContentPublishedAt)
	repo.AssertExpectations(t)
}

func TestApproveSetsPublishedAtOnFirstApproval(t *testing.T) {
	repo := new(mockContentRepo)
	approvedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, approvedAt)

	cur := pendingContent(uuid.New())
	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["content_status"] == model.StatusApproved &&
			fields["content_admin_notes"] == nil &&
			fields["content_published_at"] == approvedAt
	})).Return(nil)

	_, err := svc.Approve(cur.ContentID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestApproveAfterRejectKeepsOriginalPublishedAt(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	firstPublish := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cur := pendingContent(uuid.New())
	cur.ContentStatus = model.StatusRejected
	cur.ContentPublishedAt = &firstPublish

	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, touchesPublishedAt := fields["content_published_at"]
		return fields["content_status"] == model.StatusApproved && !touchesPublishedAt
	})).Return(nil)

	_, err := svc.Approve(cur.ContentID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRejectRecordsNotesWithoutTouchingPublishedAt(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	publishedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cur := pendingContent(uuid.New())
	cur.ContentStatus = model.StatusApproved
	cur.ContentPublishedAt = &publishedAt

	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, touchesPublishedAt := fields["content_published_at"]
		return fields["content_status"] == model.StatusRejected &&
			fields["content_admin_notes"] == "Scan halaman 3 buram" &&
			!touchesPublishedAt
	})).Return(nil)

	_, err := svc.Reject(cur.ContentID, "Scan halaman 3 buram")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEditMetaOnRejectedResubmitsAndClearsNotes(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	owner := uuid.New()
	notes := "Judul kurang jelas"
	cur := pendingContent(owner)
	cur.ContentStatus = model.StatusRejected
	cur.ContentAdminNotes = &notes

	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["content_title"] == "Tafsir Juz Amma (edisi revisi)" &&
			fields["content_status"] == model.StatusPending &&
			fields["content_admin_notes"] == nil
	})).Return(nil)

	_, err := svc.EditMeta(cur.ContentID, owner, "Tafsir Juz Amma (edisi revisi)", nil, nil, nil, nil)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEditMetaOnPendingKeepsStatusUntouched(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	owner := uuid.New()
	cur := pendingContent(owner)

	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, touchesStatus := fields["content_status"]
		return !touchesStatus
	})).Return(nil)

	_, err := svc.EditMeta(cur.ContentID, owner, "Tafsir Juz Amma", nil, nil, nil, []string{"tafsir"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEditMetaRejectsNonOwnerAndApprovedContent(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	owner := uuid.New()
	cur := pendingContent(owner)
	repo.On("FindByID", cur.ContentID).Return(cur, nil)

	_, err := svc.EditMeta(cur.ContentID, uuid.New(), "X", nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNotOwner)

	cur.ContentStatus = model.StatusApproved
	_, err = svc.EditMeta(cur.ContentID, owner, "X", nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrContentLocked)

	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestDeleteOwnBlockedOnApproved(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	owner := uuid.New()
	cur := pendingContent(owner)
	cur.ContentStatus = model.StatusApproved
	repo.On("FindByID", cur.ContentID).Return(cur, nil)

	_, err := svc.DeleteOwn(cur.ContentID, owner)

	assert.ErrorIs(t, err, ErrContentLocked)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteOwnAllowsPendingAndRejected(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusRejected} {
		repo := new(mockContentRepo)
		svc := newTestService(repo, time.Now())

		owner := uuid.New()
		cur := pendingContent(owner)
		cur.ContentStatus = status
		repo.On("FindByID", cur.ContentID).Return(cur, nil)
		repo.On("Delete", cur.ContentID).Return(nil)

		deleted, err := svc.DeleteOwn(cur.ContentID, owner)

		assert.NoError(t, err, status)
		assert.Equal(t, cur, deleted)
		repo.AssertExpectations(t)
	}
}

func TestSetPendingRequeuesFromAnyStatusKeepingPublishedAt(t *testing.T) {
	for _, status := range []string{model.StatusApproved, model.StatusRejected} {
		repo := new(mockContentRepo)
		svc := newTestService(repo, time.Now())

		notes := "salah tolak"
		firstPublish := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		cur := pendingContent(uuid.New())
		cur.ContentStatus = status
		cur.ContentAdminNotes = &notes
		cur.ContentPublishedAt = &firstPublish

		repo.On("FindByID", cur.ContentID).Return(cur, nil)
		repo.On("UpdateFields", cur.ContentID, mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, touchesPublishedAt := fields["content_published_at"]
			return fields["content_status"] == model.StatusPending &&
				fields["content_admin_notes"] == nil &&
				!touchesPublishedAt
		})).Return(nil)

		_, err := svc.SetPending(cur.ContentID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	}
}

func TestAdminDeleteAllowsAnyStatus(t *testing.T) {
	repo := new(mockContentRepo)
	svc := newTestService(repo, time.Now())

	cur := pendingContent(uuid.New())
	cur.ContentStatus = model.StatusApproved
	repo.On("FindByID", cur.ContentID).Return(cur, nil)
	repo.On("Delete", cur.ContentID).Return(nil)

	deleted, err := svc.AdminDelete(cur.ContentID)

	assert.NoError(t, err)
	assert.Equal(t, cur, deleted)
	repo.AssertExpectations(t)
}
