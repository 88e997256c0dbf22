package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/draftshare/draftshare/internal/model"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
)

type fakeDocRepo struct {
	docs            []model.Document
	created         *model.Document
	listStatusesArg []string
}

func (f *fakeDocRepo) Create(ctx context.Context, doc *model.Document) error {
	f.created = doc
	return nil
}

func (f *fakeDocRepo) Update(ctx context.Context, doc *model.Document) error {
	return nil
}

func (f *fakeDocRepo) GetByID(ctx context.Context, userID, docID string) (*model.Document, error) {
	for _, doc := range f.docs {
		if doc.ID == docID && doc.UserID == userID {
			result := doc
			return &result, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeDocRepo) GetAnyByID(ctx context.Context, docID string) (*model.Document, error) {
	for _, doc := range f.docs {
		if doc.ID == docID {
			result := doc
			return &result, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeDocRepo) ListByUser(ctx context.Context, userID string) ([]model.Document, error) {
	out := make([]model.Document, 0)
	for _, doc := range f.docs {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeDocRepo) ListByStatuses(ctx context.Context, userID string, statuses []string) ([]model.Document, error) {
	f.listStatusesArg = statuses
	allowed := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	out := make([]model.Document, 0)
	for _, doc := range f.docs {
		if doc.UserID != userID {
			continue
		}
		if _, ok := allowed[doc.Status]; !ok {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func TestDraftsGrouping(t *testing.T) {
	ctx := context.Background()
	// ListByStatuses hands back mtime-desc order; grouping must preserve it.
	docRepo := &fakeDocRepo{docs: []model.Document{
		{ID: "d-new", UserID: "owner-1", Title: "Newer Draft", Status: model.StatusDraft, Mtime: 200},
		{ID: "d-old", UserID: "owner-1", Title: "Older Draft", Status: model.StatusDraft, Mtime: 100},
		{ID: "p-1", UserID: "owner-1", Title: "Waiting", Status: model.StatusPending, Mtime: 150},
		{ID: "pub-1", UserID: "owner-1", Title: "Live", Status: model.StatusPublished, Mtime: 300},
		{ID: "other", UserID: "owner-2", Title: "Not Mine", Status: model.StatusDraft, Mtime: 400},
	}}
	svc := NewDocumentService(docRepo)

	groups, err := svc.Drafts(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	require.Equal(t, "Your Drafts:", groups[0].Label)
	require.Equal(t, 2, groups[0].Count)
	require.Equal(t, []DraftItem{{ID: "d-new", Title: "Newer Draft"}, {ID: "d-old", Title: "Older Draft"}}, groups[0].Items)

	require.Equal(t, "Your Scheduled Posts:", groups[1].Label)
	require.Equal(t, 0, groups[1].Count)
	require.NotNil(t, groups[1].Items, "empty bucket must serialize as [], not null")
	require.Empty(t, groups[1].Items)

	require.Equal(t, "Pending Review:", groups[2].Label)
	require.Equal(t, 1, groups[2].Count)
	require.Equal(t, []DraftItem{{ID: "p-1", Title: "Waiting"}}, groups[2].Items)

	// Published posts are never candidates for sharing.
	require.ElementsMatch(t,
		[]string{model.StatusDraft, model.StatusScheduled, model.StatusPending},
		docRepo.listStatusesArg,
	)
}

func TestDraftsAllBucketsEmpty(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{})

	groups, err := svc.Drafts(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	for _, group := range groups {
		require.Equal(t, 0, group.Count)
		require.NotNil(t, group.Items)
		require.Empty(t, group.Items)
	}
}

func TestDocumentCreateDefaultsToDraft(t *testing.T) {
	docRepo := &fakeDocRepo{}
	svc := NewDocumentService(docRepo)

	doc, err := svc.Create(context.Background(), "owner-1", DocumentCreateInput{Title: "Untitled"})
	require.NoError(t, err)
	require.Equal(t, model.StatusDraft, doc.Status)
	require.Equal(t, doc, docRepo.created)
}

func TestDocumentCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{})

	_, err := svc.Create(context.Background(), "owner-1", DocumentCreateInput{Title: "x", Status: "archived"})
	require.ErrorIs(t, err, appErr.ErrInvalid)
}
