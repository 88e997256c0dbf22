package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/draftshare/draftshare/internal/model"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
	"github.com/draftshare/draftshare/internal/version"
)

const (
	sharedPostsOption = "draftshare_shared_posts"
	versionOption     = "draftshare_version"
)

// OptionProvider is the slice of the options repo the store needs.
type OptionProvider interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// OptionStore persists the whole share map as one JSON option row, plus a
// separate informational record carrying the software version.
type OptionStore struct {
	options OptionProvider
}

func NewOptionStore(options OptionProvider) *OptionStore {
	return &OptionStore{options: options}
}

func (s *OptionStore) Load(ctx context.Context) (model.ShareMap, error) {
	raw, err := s.options.Get(ctx, sharedPostsOption)
	if appErr.IsNotFound(err) {
		return make(model.ShareMap), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load shares: %v", appErr.ErrPersistence, err)
	}
	var shares model.ShareMap
	if err := json.Unmarshal([]byte(raw), &shares); err != nil {
		return nil, fmt.Errorf("%w: decode shares: %v", appErr.ErrPersistence, err)
	}
	if shares == nil {
		shares = make(model.ShareMap)
	}
	return shares, nil
}

func (s *OptionStore) Save(ctx context.Context, shares model.ShareMap) error {
	raw, err := json.Marshal(shares)
	if err != nil {
		return fmt.Errorf("%w: encode shares: %v", appErr.ErrPersistence, err)
	}
	if err := s.options.Set(ctx, versionOption, version.Version); err != nil {
		return fmt.Errorf("%w: save version: %v", appErr.ErrPersistence, err)
	}
	if err := s.options.Set(ctx, sharedPostsOption, string(raw)); err != nil {
		return fmt.Errorf("%w: save shares: %v", appErr.ErrPersistence, err)
	}
	return nil
}
