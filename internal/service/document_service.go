package service

import (
	"context"

	"github.com/draftshare/draftshare/internal/model"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
	"github.com/draftshare/draftshare/internal/pkg/timeutil"
)

// DocumentRepository is the persistence surface the document service needs.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	Update(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, userID, docID string) (*model.Document, error)
	GetAnyByID(ctx context.Context, docID string) (*model.Document, error)
	ListByUser(ctx context.Context, userID string) ([]model.Document, error)
	ListByStatuses(ctx context.Context, userID string, statuses []string) ([]model.Document, error)
}

type DocumentService struct {
	docs DocumentRepository
}

func NewDocumentService(docs DocumentRepository) *DocumentService {
	return &DocumentService{docs: docs}
}

type DocumentCreateInput struct {
	Title   string
	Content string
	Status  string
}

type DocumentUpdateInput struct {
	Title   string
	Content string
	Status  string
}

func validStatus(status string) bool {
	switch status {
	case model.StatusDraft, model.StatusScheduled, model.StatusPending, model.StatusPublished:
		return true
	}
	return false
}

func (s *DocumentService) Create(ctx context.Context, userID string, input DocumentCreateInput) (*model.Document, error) {
	status := input.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !validStatus(status) {
		return nil, appErr.ErrInvalid
	}
	now := timeutil.NowUnix()
	doc := &model.Document{
		ID:      newID(),
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Status:  status,
		Ctime:   now,
		Mtime:   now,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Update(ctx context.Context, userID, docID string, input DocumentUpdateInput) (*model.Document, error) {
	if !validStatus(input.Status) {
		return nil, appErr.ErrInvalid
	}
	doc := &model.Document{
		ID:      docID,
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Status:  input.Status,
		Mtime:   timeutil.NowUnix(),
	}
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	return s.docs.GetByID(ctx, userID, docID)
}

func (s *DocumentService) Get(ctx context.Context, userID, docID string) (*model.Document, error) {
	return s.docs.GetByID(ctx, userID, docID)
}

func (s *DocumentService) List(ctx context.Context, userID string) ([]model.Document, error) {
	return s.docs.ListByUser(ctx, userID)
}

// GetOwned and GetAny satisfy the DocumentProvider contract used by the share
// manager and the public fetch path.
func (s *DocumentService) GetOwned(ctx context.Context, userID, docID string) (*model.Document, error) {
	return s.docs.GetByID(ctx, userID, docID)
}

func (s *DocumentService) GetAny(ctx context.Context, docID string) (*model.Document, error) {
	return s.docs.GetAnyByID(ctx, docID)
}

type DraftItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type DraftGroup struct {
	Label string      `json:"label"`
	Count int         `json:"count"`
	Items []DraftItem `json:"items"`
}

// Drafts groups the owner's shareable documents the way the share page offers
// them: drafts, then scheduled, then pending review, each most recent first.
func (s *DocumentService) Drafts(ctx context.Context, userID string) ([]DraftGroup, error) {
	docs, err := s.docs.ListByStatuses(ctx, userID, []string{model.StatusDraft, model.StatusScheduled, model.StatusPending})
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string][]DraftItem)
	for _, doc := range docs {
		byStatus[doc.Status] = append(byStatus[doc.Status], DraftItem{ID: doc.ID, Title: doc.Title})
	}
	groups := []DraftGroup{
		{Label: "Your Drafts:", Items: byStatus[model.StatusDraft]},
		{Label: "Your Scheduled Posts:", Items: byStatus[model.StatusScheduled]},
		{Label: "Pending Review:", Items: byStatus[model.StatusPending]},
	}
	for i := range groups {
		if groups[i].Items == nil {
			groups[i].Items = []DraftItem{}
		}
		groups[i].Count = len(groups[i].Items)
	}
	return groups, nil
}
