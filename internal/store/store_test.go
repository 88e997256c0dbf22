package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/draftshare/draftshare/internal/model"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
)

func TestMemoryStoreCopyIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	shares := model.ShareMap{
		"user-1": {{DocumentID: "doc-1", Token: "share_aaa", ExpiresAt: 100}},
	}
	require.NoError(t, s.Save(ctx, shares))

	// Mutating the saved map must not leak into the store.
	shares["user-1"][0].Token = "share_mutated"
	shares["user-2"] = []model.Share{{DocumentID: "doc-2"}}

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "share_aaa", loaded["user-1"][0].Token)

	// Mutating a loaded map must not leak either.
	loaded["user-1"][0].ExpiresAt = 999
	again, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), again["user-1"][0].ExpiresAt)
}

type fakeOptions struct {
	values  map[string]string
	failSet bool
}

func (f *fakeOptions) Get(ctx context.Context, name string) (string, error) {
	value, ok := f.values[name]
	if !ok {
		return "", appErr.ErrNotFound
	}
	return value, nil
}

func (f *fakeOptions) Set(ctx context.Context, name, value string) error {
	if f.failSet {
		return errors.New("connection reset")
	}
	f.values[name] = value
	return nil
}

func TestOptionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	opts := &fakeOptions{values: map[string]string{}}
	s := NewOptionStore(opts)

	// Missing record loads as an empty map.
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)

	shares := model.ShareMap{
		"user-1": {
			{DocumentID: "doc-1", Token: "share_aaa", ExpiresAt: 100},
			{DocumentID: "doc-2", Token: "share_bbb", ExpiresAt: 200},
		},
	}
	require.NoError(t, s.Save(ctx, shares))
	require.NotEmpty(t, opts.values["draftshare_version"])

	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, shares, loaded)
}

func TestOptionStoreSaveFailure(t *testing.T) {
	ctx := context.Background()
	opts := &fakeOptions{values: map[string]string{}, failSet: true}
	s := NewOptionStore(opts)

	err := s.Save(ctx, model.ShareMap{})
	require.ErrorIs(t, err, appErr.ErrPersistence)
}
