package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/draftshare/draftshare/internal/model"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
	"github.com/draftshare/draftshare/internal/pkg/expiry"
	"github.com/draftshare/draftshare/internal/pkg/timeutil"
	"github.com/draftshare/draftshare/internal/pkg/token"
	"github.com/draftshare/draftshare/internal/store"
)

// DocumentProvider is the host-system collaborator the share manager consults.
// The share store never owns documents; it only references their ids.
type DocumentProvider interface {
	GetOwned(ctx context.Context, userID, docID string) (*model.Document, error)
	GetAny(ctx context.Context, docID string) (*model.Document, error)
}

// ShareService orchestrates the share lifecycle against the store. Every
// operation takes the acting owner explicitly and follows whole-map
// read-modify-write discipline: load, mutate one owner's slice, save.
type ShareService struct {
	store store.Store
	docs  DocumentProvider
}

func NewShareService(st store.Store, docs DocumentProvider) *ShareService {
	return &ShareService{store: st, docs: docs}
}

// Create mints a share for one of the owner's non-published documents. The
// document must resolve and must not be published already; a failed save
// leaves no visible state since nothing is committed until Save succeeds.
func (s *ShareService) Create(ctx context.Context, ownerID, docID, quantity, unit string) (*model.Share, error) {
	doc, err := s.docs.GetOwned(ctx, ownerID, docID)
	if err != nil {
		return nil, err
	}
	if !doc.Shareable() {
		return nil, appErr.ErrAlreadyPublished
	}
	shares, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	share := model.Share{
		DocumentID: docID,
		Token:      token.New(),
		ExpiresAt:  expiry.At(timeutil.Now(), quantity, unit),
	}
	shares[ownerID] = append(shares[ownerID], share)
	if err := s.store.Save(ctx, shares); err != nil {
		return nil, persistenceErr(err)
	}
	logutil.GetLogger(ctx).Info("share created",
		zap.String("owner_id", ownerID),
		zap.String("document_id", docID),
		zap.Int64("expires_at", share.ExpiresAt),
	)
	return &share, nil
}

// Revoke removes the owner's share with the given token. Revoking a token
// that does not exist is still a success; delete is idempotent.
func (s *ShareService) Revoke(ctx context.Context, ownerID, shareToken string) error {
	shares, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Share, 0, len(shares[ownerID]))
	for _, share := range shares[ownerID] {
		if share.Token == shareToken {
			continue
		}
		kept = append(kept, share)
	}
	shares[ownerID] = kept
	if err := s.store.Save(ctx, shares); err != nil {
		return persistenceErr(err)
	}
	logutil.GetLogger(ctx).Info("share revoked", zap.String("owner_id", ownerID))
	return nil
}

// Extend pushes out the expiry of the owner's share with the given token. An
// already-expired share restarts from now; an active one gets the duration
// added to its current expiry. An unknown token is a hard not-found and the
// store is left untouched.
func (s *ShareService) Extend(ctx context.Context, ownerID, shareToken, quantity, unit string) (*model.Share, error) {
	shares, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := timeutil.Now()
	var extended *model.Share
	owned := shares[ownerID]
	for i := range owned {
		if owned[i].Token != shareToken {
			continue
		}
		if owned[i].Expired(now.Unix()) {
			owned[i].ExpiresAt = expiry.At(now, quantity, unit)
		} else {
			owned[i].ExpiresAt += expiry.Seconds(quantity, unit)
		}
		extended = &owned[i]
	}
	if extended == nil {
		return nil, appErr.ErrNotFound
	}
	shares[ownerID] = owned
	if err := s.store.Save(ctx, shares); err != nil {
		return nil, persistenceErr(err)
	}
	logutil.GetLogger(ctx).Info("share extended",
		zap.String("owner_id", ownerID),
		zap.Int64("expires_at", extended.ExpiresAt),
	)
	result := *extended
	return &result, nil
}

// List returns the owner's shares in insertion order.
func (s *ShareService) List(ctx context.Context, ownerID string) ([]model.Share, error) {
	shares, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	owned := shares[ownerID]
	if owned == nil {
		owned = []model.Share{}
	}
	return owned, nil
}

// CanView decides whether the presented token grants anonymous read access to
// the document right now. The scan covers every owner's shares; the store is
// small and already in memory, so no index is kept.
func (s *ShareService) CanView(ctx context.Context, shareToken, docID string) (bool, error) {
	if shareToken == "" {
		return false, nil
	}
	shares, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	now := timeutil.NowUnix()
	for _, owned := range shares {
		for _, share := range owned {
			if share.Token == shareToken && share.DocumentID == docID && !share.Expired(now) {
				return true, nil
			}
		}
	}
	return false, nil
}

// PurgeExpired removes shares across all owners whose expiry is more than
// olderThan in the past. Recently expired shares are kept so owners can still
// extend them.
func (s *ShareService) PurgeExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	shares, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := timeutil.Now().Add(-olderThan).Unix()
	removed := 0
	for owner, owned := range shares {
		kept := make([]model.Share, 0, len(owned))
		for _, share := range owned {
			if share.ExpiresAt < cutoff {
				removed++
				continue
			}
			kept = append(kept, share)
		}
		if len(kept) == 0 {
			delete(shares, owner)
			continue
		}
		shares[owner] = kept
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.Save(ctx, shares); err != nil {
		return 0, persistenceErr(err)
	}
	logutil.GetLogger(ctx).Info("expired shares purged", zap.Int("removed", removed))
	return removed, nil
}

func persistenceErr(err error) error {
	if appErr.IsPersistence(err) {
		return err
	}
	return fmt.Errorf("%w: %v", appErr.ErrPersistence, err)
}
